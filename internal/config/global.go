// SPDX-License-Identifier: MPL-2.0

package config

// configDirOverride redirects ConfigDir for tests. Pointing tests at a temp
// directory through this hook avoids depending on os.UserHomeDir, which
// ignores a faked HOME on some platforms.
var configDirOverride string

// SetConfigDirOverride points ConfigDir at dir until Reset is called.
// Intended for tests only.
func SetConfigDirOverride(dir string) {
	configDirOverride = dir
}

// Reset clears the test override. Call it from test cleanup.
func Reset() {
	configDirOverride = ""
}
