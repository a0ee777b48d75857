// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the journal client process lifecycle.
//
// It restores the session, drains writes staged while offline and keeps the
// background sync worker running until the process is asked to stop.
package client
