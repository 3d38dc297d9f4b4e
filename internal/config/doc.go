// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config loads application configuration from, in order of
// precedence: environment variables (SOLEMATE_*), the TOML file at
// ~/.solemate/config.toml, and built-in defaults. A .env file in the
// working directory is loaded first so the API key can live outside
// the shell profile.
package config
