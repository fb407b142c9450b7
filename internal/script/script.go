// Package script runs the user's init.lua. The script sees a small `edi`
// table: edi.set tweaks settings on top of the TOML config, and edi.map
// binds a Normal mode key to an ex command. Scripts run sandboxed, without
// the os and io libraries.
package script

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/svanari/edi/internal/config"
)

// ExecutionTimeout aborts runaway init scripts. Best-effort: gopher-lua
// only checks between instructions.
const ExecutionTimeout = 2 * time.Second

// Result is what an init script produced.
type Result struct {
	Config config.Config

	// Keymaps binds Normal mode runes to ex command lines.
	Keymaps map[rune]string
}

// Run executes the init script at path against the given base config.
// A missing script is not an error. Script errors leave the base config
// untouched so a broken init.lua never blocks startup.
func Run(path string, base config.Config) (Result, error) {
	res := Result{Config: base, Keymaps: map[rune]string{}}
	if path == "" {
		return res, nil
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return res, nil
	}

	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()
	openBaseLibs(L)

	cfg := base
	keymaps := map[rune]string{}
	registerAPI(L, &cfg, keymaps)

	ctx, cancel := context.WithTimeout(context.Background(), ExecutionTimeout)
	defer cancel()
	L.SetContext(ctx)

	if err := L.DoFile(path); err != nil {
		return Result{Config: base, Keymaps: map[rune]string{}},
			fmt.Errorf("init script %s: %w", path, err)
	}

	res.Config = cfg.Normalized()
	res.Keymaps = keymaps
	return res, nil
}

// DefaultPath returns the conventional init script location.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "edi", "init.lua")
}

func openBaseLibs(L *lua.LState) {
	for _, pair := range []struct {
		name string
		fn   lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	} {
		L.Push(L.NewFunction(pair.fn))
		L.Push(lua.LString(pair.name))
		L.Call(1, 0)
	}
}

func registerAPI(L *lua.LState, cfg *config.Config, keymaps map[rune]string) {
	edi := L.NewTable()

	L.SetField(edi, "set", L.NewFunction(func(L *lua.LState) int {
		name := L.CheckString(1)
		value := L.CheckAny(2)
		if err := setOption(cfg, name, value); err != nil {
			L.RaiseError("%s", err)
		}
		return 0
	}))

	L.SetField(edi, "map", L.NewFunction(func(L *lua.LState) int {
		keys := []rune(L.CheckString(1))
		command := L.CheckString(2)
		if len(keys) != 1 {
			L.RaiseError("map: key must be a single character, got %q", string(keys))
		}
		keymaps[keys[0]] = command
		return 0
	}))

	L.SetGlobal("edi", edi)
}

func setOption(cfg *config.Config, name string, value lua.LValue) error {
	switch name {
	case "tab_width":
		return setInt(&cfg.Editor.TabWidth, name, value)
	case "max_undo":
		return setInt(&cfg.Editor.MaxUndo, name, value)
	case "scroll_margin":
		return setInt(&cfg.Editor.ScrollMargin, name, value)
	case "line_numbers":
		return setBool(&cfg.UI.LineNumbers, name, value)
	case "status_fg":
		return setString(&cfg.UI.StatusFG, name, value)
	case "status_bg":
		return setString(&cfg.UI.StatusBG, name, value)
	case "log_file":
		return setString(&cfg.Log.File, name, value)
	case "log_level":
		return setString(&cfg.Log.Level, name, value)
	default:
		return fmt.Errorf("unknown option %q", name)
	}
}

func setInt(dst *int, name string, value lua.LValue) error {
	n, ok := value.(lua.LNumber)
	if !ok {
		return fmt.Errorf("option %q wants a number", name)
	}
	*dst = int(n)
	return nil
}

func setBool(dst *bool, name string, value lua.LValue) error {
	b, ok := value.(lua.LBool)
	if !ok {
		return fmt.Errorf("option %q wants a boolean", name)
	}
	*dst = bool(b)
	return nil
}

func setString(dst *string, name string, value lua.LValue) error {
	s, ok := value.(lua.LString)
	if !ok {
		return fmt.Errorf("option %q wants a string", name)
	}
	*dst = string(s)
	return nil
}
