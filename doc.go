// doc.go: Package documentation for the go-options library
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

// Package options provides a strongly-typed configuration options framework
// with validation, named instances, and hot reload.
//
// An options value is an ordinary struct produced by a factory pipeline:
// default construction, followed by configure actions, post-configure actions,
// and validators. Multiple independently configured instances of the same type
// are distinguished by a case-insensitive name; the default instance uses
// DefaultName.
//
// Three access patterns are supported:
//
//   - Options: a single cached value (Manager.Value)
//   - Snapshot: named values without change tracking (Manager.Get)
//   - Monitor: long-lived, cache-invalidating access with change
//     notifications (ChangeMonitor)
//
// The monitor subscribes to one or more ChangeTokenSource implementations.
// When a source fires, the cached value for that source's name is dropped,
// recomputed through the factory, and every registered listener is invoked
// with the new value. FileSource provides a ready-made source backed by
// Argus file watching, so options follow a JSON/YAML/TOML configuration
// file at runtime.
//
// Basic usage:
//
//	type ServerOptions struct {
//	    Addr    string `json:"addr" yaml:"addr"`
//	    Retries int    `json:"retries" yaml:"retries"`
//	}
//
//	monitor := options.NewBuilder[ServerOptions]().
//	    Configure(func(o *ServerOptions) { o.Addr = ":8080" }).
//	    Validate(func(o *ServerOptions) options.ValidateResult {
//	        if o.Retries < 0 {
//	            return options.Fail("retries must be non-negative")
//	        }
//	        return options.Success()
//	    }).
//	    Monitor()
//	defer monitor.Close()
//
//	sub := monitor.OnChange(func(name string, o *ServerOptions) {
//	    log.Printf("options %q changed: %+v", name, o)
//	})
//	defer sub.Close()
//
//	current := monitor.CurrentValue()
package options
