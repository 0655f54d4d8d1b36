package vpn

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/godbus/dbus/v5"
)

// fakeService is an in-memory SettingsService.
type fakeService struct {
	paths    []dbus.ObjectPath
	settings map[dbus.ObjectPath]Settings
	listErr  error
	getErr   map[dbus.ObjectPath]error
	getCalls int
}

func newFakeService() *fakeService {
	return &fakeService{
		settings: make(map[dbus.ObjectPath]Settings),
		getErr:   make(map[dbus.ObjectPath]error),
	}
}

func (f *fakeService) add(settings Settings) dbus.ObjectPath {
	path := dbus.ObjectPath(fmt.Sprintf("/org/freedesktop/NetworkManager/Settings/%d", len(f.paths)+1))
	f.paths = append(f.paths, path)
	f.settings[path] = settings
	return path
}

func (f *fakeService) ListConnections(ctx context.Context) ([]dbus.ObjectPath, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]dbus.ObjectPath(nil), f.paths...), nil
}

func (f *fakeService) GetSettings(ctx context.Context, path dbus.ObjectPath) (Settings, error) {
	f.getCalls++
	if err := f.getErr[path]; err != nil {
		return nil, err
	}
	s, ok := f.settings[path]
	if !ok {
		return nil, errors.New("no such profile")
	}
	return s, nil
}

// profile builds a settings bundle with a connection section.
func profile(fields map[string]interface{}) Settings {
	section := make(map[string]dbus.Variant, len(fields))
	for k, v := range fields {
		section[k] = dbus.MakeVariant(v)
	}
	return Settings{"connection": section}
}

// recordingLogger captures warnings.
type recordingLogger struct {
	mu    sync.Mutex
	warns []string
}

func (r *recordingLogger) Debug(msg string, args ...interface{}) {}
func (r *recordingLogger) Info(msg string, args ...interface{})  {}
func (r *recordingLogger) Error(msg string, args ...interface{}) {}

func (r *recordingLogger) Warn(msg string, args ...interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.warns = append(r.warns, fmt.Sprintf(msg, args...))
}
