// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

// Package config loads and validates learnqueue configuration.
//
// # Layers
//
// Configuration is assembled with koanf in three layers, later layers winning:
//
//  1. Struct defaults (defaultConfig)
//  2. Optional YAML file: $CONFIG_PATH, then config.yaml / config.yml in the
//     working directory, then /etc/learnqueue/config.yaml
//  3. Environment variables, mapped explicitly (see envTransformFunc)
//
// Unmapped environment variables are ignored so that the process environment
// cannot leak arbitrary keys into the config tree.
//
// # Example
//
//	upstream:
//	  kind: notion
//	  database_id: 0123abcd
//	  cache_ttl: 5m
//	store:
//	  backend: badger
//	  path: /data/learnqueue
//	streak:
//	  weekly_goal: 7
//	  weekly_window: lifetime
//
// Secrets such as the Notion API key are normally supplied via NOTION_API_KEY.
package config
