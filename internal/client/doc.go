// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the runtime of the terminal admin client.
//
// The client state has three lifecycles. [Settings] are durable and live in
// the local SQLite database. The [Session] lasts from login to logout or
// token expiry. The [Mirror] caches the schema downloaded from the server
// and is refreshed in the background. [State] ties them to the server
// adapter, and [App] runs the terminal UI together with the refresh worker.
package client
