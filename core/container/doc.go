// Package container provides the Manager that wraps one storage container.
//
// A Manager is constructed with a credential and starts uninitialized. Initialize
// resolves the credential, creates the container when it is missing and keeps the
// resulting handle. Save and Read are only legal afterwards; before that they fail
// with ErrNotInitialized without touching the backend.
//
// # Lifecycle
//
//	Uninitialized --Initialize ok--> Initialized
//
// There is no way back: the handle lives as long as the Manager. Calling
// Initialize again re-resolves the credential and replaces the handle.
//
// # Usage
//
//	mgr, err := container.New(cfg.Storage.ConnectionString)
//	if err := mgr.Initialize(ctx, "mycontainer"); err != nil {
//	    return err
//	}
//	err = mgr.Save(ctx, "greeting", "hello")
//	content, err := mgr.Read(ctx, "greeting")
package container
