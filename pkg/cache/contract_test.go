package cache

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"
)

// testContract exercises the behavior every Cache backend must share.
// Keys are namespaced per run so a shared backend can be reused.
func testContract(t *testing.T, c Cache) {
	t.Helper()
	ctx := context.Background()
	ns := fmt.Sprintf("test:%d:", time.Now().UnixNano())

	t.Run("miss", func(t *testing.T) {
		data, ok, err := c.Get(ctx, ns+"absent")
		if err != nil || ok || data != nil {
			t.Errorf("Get(absent) = %q, %v, %v; want miss", data, ok, err)
		}
	})

	t.Run("set get", func(t *testing.T) {
		want := []byte(`{"court":"10x15"}`)
		if err := c.Set(ctx, ns+"k", want, time.Hour); err != nil {
			t.Fatalf("Set: %v", err)
		}
		got, ok, err := c.Get(ctx, ns+"k")
		if err != nil || !ok {
			t.Fatalf("Get = %v, %v; want hit", ok, err)
		}
		if !bytes.Equal(got, want) {
			t.Errorf("Get = %q, want %q", got, want)
		}
	})

	t.Run("overwrite", func(t *testing.T) {
		_ = c.Set(ctx, ns+"o", []byte("one"), 0)
		_ = c.Set(ctx, ns+"o", []byte("two"), 0)
		got, _, _ := c.Get(ctx, ns+"o")
		if string(got) != "two" {
			t.Errorf("Get after overwrite = %q", got)
		}
	})

	t.Run("delete", func(t *testing.T) {
		_ = c.Set(ctx, ns+"d", []byte("x"), 0)
		if err := c.Delete(ctx, ns+"d"); err != nil {
			t.Fatalf("Delete: %v", err)
		}
		if _, ok, _ := c.Get(ctx, ns+"d"); ok {
			t.Error("key still present after Delete")
		}
		if err := c.Delete(ctx, ns+"d"); err != nil {
			t.Errorf("Delete of missing key: %v", err)
		}
	})
}
