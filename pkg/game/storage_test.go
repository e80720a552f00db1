package game

import (
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// newTestGdataManager 在临时 HOME 下创建 gdata Manager
func newTestGdataManager(t *testing.T, appName string) *gdata.Manager {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", "")

	manager := OpenStorage(appName)
	if manager == nil {
		t.Skip("Cannot create gdata manager for testing")
	}
	return manager
}

func TestOpenStorage(t *testing.T) {
	manager := newTestGdataManager(t, "hazardwaves_test_open")
	if manager.ObjectPropExists(profileObject, profileProperty) {
		t.Error("fresh storage should not contain a profile")
	}
}
