// Package remotedata connects test runs to the network guard.
//
// A run picks one mode, usually from NETGUARD_REMOTE_DATA:
//
//   - none: only loopback is reachable (default)
//   - github: loopback plus the code-hosting domains
//   - astropy: loopback plus the data-hosting domains (which include github)
//   - any: the guard is not installed
//
// Tests that need a remote source declare it and are skipped otherwise:
//
//	func TestMain(m *testing.M) {
//	    mode, _ := remotedata.FromEnv()
//	    release := remotedata.Apply(guard.Default, mode, false)
//	    code := m.Run()
//	    release()
//	    os.Exit(code)
//	}
//
//	func TestDownload(t *testing.T) {
//	    remotedata.SkipUnless(t, mode, remotedata.ModeAstropy)
//	    ...
//	}
package remotedata
