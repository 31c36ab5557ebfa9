// Package config provides configuration loading, merging, and validation
// facilities for the UniBrain client and server.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Environment variables, after an optional dotenv file was loaded
//  2. Command-line flags
//  3. JSON or YAML config file
//  4. Built-in defaults (Base Mainnet, local SQLite store, mock AI)
//
// The main entry points are [GetClientConfig] for the terminal client and
// [GetServerConfig] for the mini-app HTTP server.
package config
