// Package config provides typed configuration access and the process-wide
// configuration manager.
//
// Config wraps a plain map with accessors that never fail: a missing key
// or a value of the wrong type yields the caller's default. Load maps from
// YAML or JSON files with FromFile, or from raw bytes with FromYAML and
// FromJSON.
//
// Manager is the shared configuration manager for a process. It is reached
// through Default, which lazily constructs exactly one instance no matter
// how many goroutines race on first access; constructing a Manager any
// other way fails with singleton.ErrIllegalConstruction once the shared
// instance exists.
//
//	mgr, err := config.Default()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := mgr.Load("app.yaml"); err != nil {
//	    log.Fatal(err)
//	}
//	timeout := mgr.Config().Duration("timeout", 30*time.Second)
package config
