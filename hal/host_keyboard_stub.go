//go:build !tinygo && !cgo

package hal

// poll has no input source without the window backend; headless runs type
// through HeadlessConfig.Keys.
func (k *hostKeyboard) poll() {}
