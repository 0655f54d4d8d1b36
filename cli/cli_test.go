package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/godbus/dbus/v5"

	"github.com/yllada/vpn-launcher/common"
	"github.com/yllada/vpn-launcher/launcher"
	"github.com/yllada/vpn-launcher/vpn"
)

const (
	homeUUID   = "6f0b2d4c-3a52-4c1e-9d0e-1b7a2f3c4d5e"
	officeUUID = "0d5a7c1e-8f2b-4e6a-b3c9-2a4d6e8f0b1c"
)

type fakeService struct {
	paths    []dbus.ObjectPath
	settings map[dbus.ObjectPath]vpn.Settings
	listErr  error
	closed   int
}

func (f *fakeService) ListConnections(ctx context.Context) ([]dbus.ObjectPath, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.paths, nil
}

func (f *fakeService) GetSettings(ctx context.Context, path dbus.ObjectPath) (vpn.Settings, error) {
	return f.settings[path], nil
}

func (f *fakeService) Close() error {
	f.closed++
	return nil
}

func (f *fakeService) add(fields map[string]interface{}) {
	section := make(map[string]dbus.Variant, len(fields))
	for k, v := range fields {
		section[k] = dbus.MakeVariant(v)
	}
	path := dbus.ObjectPath(fmt.Sprintf("/org/freedesktop/NetworkManager/Settings/%d", len(f.paths)+1))
	f.paths = append(f.paths, path)
	f.settings[path] = vpn.Settings{common.NMConnectionSection: section}
}

// scenario holds HomeVPN (connected), a Wi-Fi profile and OfficeVPN.
func scenario() *fakeService {
	f := &fakeService{settings: make(map[dbus.ObjectPath]vpn.Settings)}
	f.add(map[string]interface{}{"id": "HomeVPN", "type": "vpn", "uuid": homeUUID, "timestamp": uint64(1700000000)})
	f.add(map[string]interface{}{"id": "WiFi", "type": "802-11-wireless", "timestamp": uint64(1700000000)})
	f.add(map[string]interface{}{"id": "OfficeVPN", "type": "vpn", "uuid": officeUUID})
	return f
}

type fakeRunner struct {
	started [][]string
	ran     [][]string
	err     error
}

func (r *fakeRunner) Start(argv []string) error {
	r.started = append(r.started, argv)
	return r.err
}

func (r *fakeRunner) Run(ctx context.Context, argv []string) error {
	r.ran = append(r.ran, argv)
	return r.err
}

type harness struct {
	service  *fakeService
	runner   *fakeRunner
	opened   int
	terminal bool
	lookErr  error
	config   string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	t.Setenv("XDG_DATA_DIRS", t.TempDir())
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	return &harness{
		service: scenario(),
		runner:  &fakeRunner{},
		config:  filepath.Join(t.TempDir(), "config.yaml"),
	}
}

func (h *harness) run(args ...string) (string, error) {
	var out bytes.Buffer
	env := Env{
		Stdout: &out,
		Stderr: io.Discard,
		NewService: func() vpn.SettingsService {
			h.opened++
			return h.service
		},
		LookPath: func(file string) (string, error) {
			if h.lookErr != nil {
				return "", h.lookErr
			}
			return "/usr/bin/" + file, nil
		},
		Runner:     h.runner,
		IsTerminal: func() bool { return h.terminal },
	}

	root, a := newRootCommand(BuildInfo{Version: "1.2.3", BuildTime: "unknown"}, env)
	defer a.close()

	root.SetArgs(append([]string{"--config", h.config}, args...))
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestQuery_Table(t *testing.T) {
	h := newHarness(t)

	out, err := h.run("query", "home")
	if err != nil {
		t.Fatalf("query error = %v", err)
	}

	for _, want := range []string{"HomeVPN", "Disconnect from HomeVPN", "nmcli connection down id HomeVPN"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "OfficeVPN") || strings.Contains(out, "WiFi") {
		t.Errorf("output should only list HomeVPN:\n%s", out)
	}
	if h.service.closed != 1 {
		t.Errorf("service closed %d times, want 1", h.service.closed)
	}
}

func TestQuery_JSON(t *testing.T) {
	h := newHarness(t)

	out, err := h.run("query", "--json")
	if err != nil {
		t.Fatalf("query error = %v", err)
	}

	var items []launcher.Item
	if err := json.Unmarshal([]byte(out), &items); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}

	wantIDs := []string{"vpn-down-HomeVPN", "vpn-up-OfficeVPN"}
	if len(items) != len(wantIDs) {
		t.Fatalf("got %d items, want %d", len(items), len(wantIDs))
	}
	for i, id := range wantIDs {
		if items[i].ID != id {
			t.Errorf("items[%d].ID = %q, want %q", i, items[i].ID, id)
		}
	}

	want := []string{"nmcli", "connection", "up", "id", "OfficeVPN"}
	if got := items[1].Actions[0].Commandline; strings.Join(got, " ") != strings.Join(want, " ") {
		t.Errorf("OfficeVPN commandline = %v, want %v", got, want)
	}
}

func TestQuery_NoMatch(t *testing.T) {
	h := newHarness(t)

	out, err := h.run("query", "nothing")
	if err != nil {
		t.Fatalf("query error = %v", err)
	}
	if !strings.Contains(out, "No VPN connections match.") {
		t.Errorf("output = %q", out)
	}
}

func TestQuery_ServiceFailure(t *testing.T) {
	h := newHarness(t)
	h.service.listErr = common.ErrServiceUnavailable

	out, err := h.run("query", "--json")
	if !errors.Is(err, common.ErrServiceUnavailable) {
		t.Errorf("query error = %v, want ErrServiceUnavailable", err)
	}
	if strings.TrimSpace(out) != "[]" {
		t.Errorf("output = %q, want empty JSON list", out)
	}
}

func TestMissingToolIsFatal(t *testing.T) {
	h := newHarness(t)
	h.lookErr = errors.New("executable file not found in $PATH")

	_, err := h.run("query")
	if !errors.Is(err, common.ErrToolNotFound) {
		t.Fatalf("error = %v, want ErrToolNotFound", err)
	}
	if !strings.Contains(err.Error(), "'nmcli' is not in $PATH") {
		t.Errorf("error = %q", err.Error())
	}
	if h.service.closed != 1 {
		t.Errorf("service closed %d times, want 1", h.service.closed)
	}
}

func TestList(t *testing.T) {
	h := newHarness(t)

	out, err := h.run("list")
	if err != nil {
		t.Fatalf("list error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want header, rule and 2 rows:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[2], "HomeVPN") || !strings.Contains(lines[2], homeUUID) || !strings.Contains(lines[2], "Connected") {
		t.Errorf("row for HomeVPN = %q", lines[2])
	}
	if !strings.Contains(lines[3], "OfficeVPN") || !strings.Contains(lines[3], "Disconnected") {
		t.Errorf("row for OfficeVPN = %q", lines[3])
	}
}

func TestToggle(t *testing.T) {
	tests := []struct {
		name     string
		arg      string
		wantArgv string
		wantOut  string
	}{
		{"connect", "office", "nmcli connection up id OfficeVPN", "✓ Connected to OfficeVPN"},
		{"disconnect exact", "homevpn", "nmcli connection down id HomeVPN", "✓ Disconnected from HomeVPN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)

			out, err := h.run("toggle", tt.arg)
			if err != nil {
				t.Fatalf("toggle error = %v", err)
			}
			if len(h.runner.ran) != 1 || strings.Join(h.runner.ran[0], " ") != tt.wantArgv {
				t.Errorf("ran = %v, want %q", h.runner.ran, tt.wantArgv)
			}
			if !strings.Contains(out, tt.wantOut) {
				t.Errorf("output = %q, want %q", out, tt.wantOut)
			}
		})
	}
}

func TestToggle_Errors(t *testing.T) {
	tests := []struct {
		name string
		arg  string
		want error
	}{
		{"ambiguous", "vpn", common.ErrAmbiguousMatch},
		{"unknown", "nowhere", common.ErrNoMatch},
		{"not a vpn", "wifi", common.ErrNoMatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)

			_, err := h.run("toggle", tt.arg)
			if !errors.Is(err, tt.want) {
				t.Errorf("toggle %q error = %v, want %v", tt.arg, err, tt.want)
			}
			if len(h.runner.ran) != 0 {
				t.Errorf("nothing should run, ran %v", h.runner.ran)
			}
		})
	}
}

func TestToggle_ActionFailure(t *testing.T) {
	h := newHarness(t)
	h.runner.err = fmt.Errorf("%w: exit status 4", common.ErrActionFailed)

	out, err := h.run("toggle", "office")
	if !errors.Is(err, common.ErrActionFailed) {
		t.Errorf("toggle error = %v, want ErrActionFailed", err)
	}
	if strings.Contains(out, "✓") {
		t.Errorf("failure should not report success: %q", out)
	}
}

func TestToggle_Detach(t *testing.T) {
	h := newHarness(t)

	if _, err := h.run("toggle", "--detach", "office"); err != nil {
		t.Fatalf("toggle error = %v", err)
	}
	if len(h.runner.started) != 1 || len(h.runner.ran) != 0 {
		t.Errorf("started = %v, ran = %v", h.runner.started, h.runner.ran)
	}
}

func TestMetadata(t *testing.T) {
	h := newHarness(t)

	out, err := h.run("metadata")
	if err != nil {
		t.Fatalf("metadata error = %v", err)
	}

	var md launcher.Metadata
	if err := json.Unmarshal([]byte(out), &md); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if md.Trigger != common.DefaultTrigger || md.Version != "1.2.3" || len(md.Dependencies) != 1 || md.Dependencies[0] != "nmcli" {
		t.Errorf("metadata = %+v", md)
	}
}

func TestTUIRequiresTerminal(t *testing.T) {
	h := newHarness(t)

	if _, err := h.run("tui"); err == nil {
		t.Error("tui without a terminal should fail")
	}
}

func TestVersionSkipsPlugin(t *testing.T) {
	h := newHarness(t)
	h.lookErr = errors.New("missing")

	out, err := h.run("version")
	if err != nil {
		t.Fatalf("version error = %v", err)
	}
	if !strings.Contains(out, "VPN Launcher v1.2.3") {
		t.Errorf("output = %q", out)
	}
	if h.opened != 0 {
		t.Errorf("version opened the service %d times", h.opened)
	}
}

func TestConfigInitAndShow(t *testing.T) {
	h := newHarness(t)

	if _, err := h.run("config", "init"); err != nil {
		t.Fatalf("config init error = %v", err)
	}
	if !common.FileExists(h.config) {
		t.Fatal("config init did not write the file")
	}

	if _, err := h.run("config", "init"); !errors.Is(err, common.ErrConfigSave) {
		t.Errorf("second init error = %v, want ErrConfigSave", err)
	}

	if err := os.WriteFile(h.config, []byte("trigger: \"v \"\n"), 0600); err != nil {
		t.Fatal(err)
	}
	out, err := h.run("config", "show")
	if err != nil {
		t.Fatalf("config show error = %v", err)
	}
	if !strings.Contains(out, "trigger: 'v '") && !strings.Contains(out, `trigger: "v "`) {
		t.Errorf("config show = %q", out)
	}
	if h.opened != 0 {
		t.Errorf("config opened the service %d times", h.opened)
	}
}

func TestCustomTrigger(t *testing.T) {
	h := newHarness(t)
	if err := os.WriteFile(h.config, []byte("trigger: \"v \"\ntool: nm\n"), 0600); err != nil {
		t.Fatal(err)
	}

	out, err := h.run("query", "office")
	if err != nil {
		t.Fatalf("query error = %v", err)
	}
	if !strings.Contains(out, "nm connection up id OfficeVPN") {
		t.Errorf("output = %q", out)
	}
}
