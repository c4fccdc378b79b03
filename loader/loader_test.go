package loader_test

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/arthur-debert/enumerated/enum"
	"github.com/arthur-debert/enumerated/loader"
	"github.com/arthur-debert/enumerated/testutil"
)

const colourDefinition = `name: Colour
values:
  - {name: red, value: 3}
  - {name: green, value: 1}
  - {name: blue, value: 2}
`

func TestLoadFixtures(t *testing.T) {
	for _, file := range []string{"step_type.yaml", "step_type.json", "step_type.toml", "string_step_type.yml"} {
		t.Run(file, func(t *testing.T) {
			e, err := loader.Load(context.Background(), testutil.TestdataPath(file))
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			testutil.AssertEnumLaws(t, e)
			testutil.AssertNames(t, e.Values(), testutil.StepTypeNames...)
		})
	}
}

func TestLoadErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("missing file", func(t *testing.T) {
		_, err := loader.Load(ctx, testutil.TestdataPath("missing.yaml"))
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("expected fs.ErrNotExist, got %v", err)
		}
	})

	t.Run("unknown extension", func(t *testing.T) {
		path := testutil.WriteTemp(t, "colour.txt", colourDefinition)
		_, err := loader.Load(ctx, path)
		if err == nil || !strings.Contains(err.Error(), "no format registered") {
			t.Errorf("expected unknown extension error, got %v", err)
		}
	})

	t.Run("construction error", func(t *testing.T) {
		_, err := loader.Load(ctx, testutil.TestdataPath("duplicate_key.yaml"))
		if !errors.Is(err, enum.ErrDuplicateKey) {
			t.Errorf("expected ErrDuplicateKey, got %v", err)
		}
		if err != nil && !strings.Contains(err.Error(), "duplicate_key.yaml") {
			t.Errorf("expected the path in %q", err.Error())
		}
	})

	t.Run("decode error", func(t *testing.T) {
		path := testutil.WriteTemp(t, "broken.json", `{"name": "Broken", "values": [`)
		_, err := loader.Load(ctx, path)
		if err == nil || !strings.Contains(err.Error(), "failed to parse json definition") {
			t.Errorf("expected parse error, got %v", err)
		}
	})
}

func TestWithFormat(t *testing.T) {
	path := testutil.WriteTemp(t, "colour.txt", colourDefinition)

	e, err := loader.Load(context.Background(), path, loader.WithFormat("yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	testutil.AssertNames(t, e.Values(), "green", "blue", "red")
}

func TestLoadFromFileSystem(t *testing.T) {
	fsys := fstest.MapFS{
		"defs/colour.yaml": &fstest.MapFile{Data: []byte(colourDefinition)},
	}
	locks := loader.NewMockFileLockFactory()

	l := loader.New(loader.WithFileSystem(fsys), loader.WithFileLockFactory(locks))
	e, err := l.Load(context.Background(), "defs/colour.yaml")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if e.Name() != "Colour" || e.Len() != 3 {
		t.Errorf("got %s with %d values, want Colour with 3", e.Name(), e.Len())
	}

	lock := locks.GetLock("defs/colour.yaml")
	if lock.LockAttempts != 1 || lock.UnlockAttempts != 1 {
		t.Errorf("lock attempts %d, unlock attempts %d, want 1 and 1", lock.LockAttempts, lock.UnlockAttempts)
	}
	if lock.Readers() != 0 {
		t.Errorf("lock still held by %d readers", lock.Readers())
	}
}

func TestLocking(t *testing.T) {
	fsys := fstest.MapFS{
		"colour.yaml": &fstest.MapFile{Data: []byte(colourDefinition)},
	}

	t.Run("held by a writer", func(t *testing.T) {
		locks := loader.NewMockFileLockFactory()
		locks.GetLock("colour.yaml").SetHeld(true)

		_, err := loader.Load(context.Background(), "colour.yaml",
			loader.WithFileSystem(fsys), loader.WithFileLockFactory(locks))
		if !errors.Is(err, loader.ErrLockUnavailable) {
			t.Errorf("expected ErrLockUnavailable, got %v", err)
		}
	})

	t.Run("lock error", func(t *testing.T) {
		locks := loader.NewMockFileLockFactory()
		locks.DefaultLockError = errors.New("lock failed")

		_, err := loader.Load(context.Background(), "colour.yaml",
			loader.WithFileSystem(fsys), loader.WithFileLockFactory(locks))
		if err == nil || !strings.Contains(err.Error(), "failed to acquire lock") {
			t.Errorf("expected lock error, got %v", err)
		}
	})

	t.Run("unlock error is logged", func(t *testing.T) {
		var buf bytes.Buffer
		locks := loader.NewMockFileLockFactory()
		locks.DefaultUnlockError = errors.New("unlock failed")

		_, err := loader.Load(context.Background(), "colour.yaml",
			loader.WithFileSystem(fsys),
			loader.WithFileLockFactory(locks),
			loader.WithLogger(slog.New(slog.NewTextHandler(&buf, nil))))
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if !strings.Contains(buf.String(), "failed to release lock") {
			t.Errorf("expected a warning, got %q", buf.String())
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := loader.Load(ctx, "colour.yaml",
			loader.WithFileSystem(fsys), loader.WithFileLockFactory(loader.NewMockFileLockFactory()))
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	})
}

func TestLoadAll(t *testing.T) {
	ctx := context.Background()
	l := loader.New()

	enums, err := l.LoadAll(ctx, testutil.TestdataPath("step_type.yaml"), testutil.TestdataPath("string_step_type.yml"))
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(enums) != 2 {
		t.Fatalf("got %d enums, want 2", len(enums))
	}
	if enums[0].Kind() != enum.Structured || enums[1].Kind() != enum.Primitive {
		t.Errorf("got kinds %s and %s", enums[0].Kind(), enums[1].Kind())
	}

	_, err = l.LoadAll(ctx, testutil.TestdataPath("step_type.yaml"), testutil.TestdataPath("duplicate_key.yaml"))
	if !errors.Is(err, enum.ErrDuplicateKey) {
		t.Errorf("expected ErrDuplicateKey, got %v", err)
	}
}

func TestDebugLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := loader.Load(context.Background(), testutil.TestdataPath("step_type.toml"), loader.WithLogger(logger))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"decoding definition", "format=toml", "enum loaded", "enum=StepType", "values=7"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in log output:\n%s", want, out)
		}
	}
}
