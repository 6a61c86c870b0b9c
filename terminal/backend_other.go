//go:build !unix

package terminal

// NewNativeBackend returns a backend whose Init fails on this platform
func NewNativeBackend() Backend { return unsupportedBackend{} }

// NewTcellBackend returns a backend whose Init fails on this platform
func NewTcellBackend() Backend { return unsupportedBackend{} }
