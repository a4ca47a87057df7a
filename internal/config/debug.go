package config

import "sync"

// DebugSettings holds debug switches that can be flipped while running.
type DebugSettings struct {
	mu             sync.RWMutex
	wireframe      bool
	logBufferUsage bool
}

var globalDebugSettings = &DebugSettings{
	logBufferUsage: true,
}

// ApplyDebug seeds the runtime switches from a loaded config.
func ApplyDebug(d DebugConfig) {
	globalDebugSettings.mu.Lock()
	defer globalDebugSettings.mu.Unlock()
	globalDebugSettings.wireframe = d.Wireframe
	globalDebugSettings.logBufferUsage = d.LogBufferUsage
}

// GetWireframe returns whether chunks are drawn as wireframe
func GetWireframe() bool {
	globalDebugSettings.mu.RLock()
	defer globalDebugSettings.mu.RUnlock()
	return globalDebugSettings.wireframe
}

// ToggleWireframe flips wireframe mode and returns the new value
func ToggleWireframe() bool {
	globalDebugSettings.mu.Lock()
	defer globalDebugSettings.mu.Unlock()
	globalDebugSettings.wireframe = !globalDebugSettings.wireframe
	return globalDebugSettings.wireframe
}

// GetLogBufferUsage returns whether each rebuild logs its buffer usage
func GetLogBufferUsage() bool {
	globalDebugSettings.mu.RLock()
	defer globalDebugSettings.mu.RUnlock()
	return globalDebugSettings.logBufferUsage
}
