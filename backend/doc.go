// Package backend provides a pluggable GPU backend abstraction.
//
// The backend package lets viewport run on multiple GPU stacks. Backends
// register themselves via init() functions and are selected at runtime.
//
// # Backend Registration
//
// Backends are registered on import:
//
//	import _ "github.com/gogpu/viewport/backend/wgpu"
//	import _ "github.com/gogpu/viewport/backend/headless"
//
// # Backend Selection
//
// Use Default() to open the best available backend, or New() to request a
// specific one by name:
//
//	gpu, err := backend.Default()
//	// or
//	gpu, err := backend.New("headless")
//
// # Available Backends
//
//   - "wgpu": wgpu-native via cogentcore/webgpu; presents to real windows
//   - "gogpu": pure Go device via gogpu/wgpu; offscreen presentation
//   - "headless": CPU swap-chain emulation; always available
package backend
