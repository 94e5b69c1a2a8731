// RecSys Engine - E-commerce Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recsys-engine

/*
Package config provides centralized configuration management for the
recommendation service.

Configuration is layered with Koanf v2:

 1. Struct defaults (defaultConfig)
 2. Optional YAML file: CONFIG_PATH, config.yaml, or /etc/recsys/config.yaml
 3. Environment variables (highest priority)

Only mapped environment variables are read. The most common ones:

	HTTP_PORT=8000
	ARTIFACTS_SOURCE=json        # json | snapshot | duckdb
	ARTIFACTS_PATH=./models
	RECOMMEND_NEIGHBORS=5
	TRANSLATION_LANGUAGE=es
	CORS_ORIGINS=https://shop.example.com,https://admin.example.com
	LOG_LEVEL=info

Load validates the result and returns an error describing the first invalid
setting.
*/
package config
