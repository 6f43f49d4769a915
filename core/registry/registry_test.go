package registry

import "testing"

func TestGlobalRegistry_SetGet(t *testing.T) {
	GlobalRegistry.SetGlobal("test:key", 42)
	v, ok := GlobalRegistry.GetGlobal("test:key")
	if !ok {
		t.Fatal("GetGlobal: want true")
	}
	if v.(int) != 42 {
		t.Errorf("GetGlobal = %v, want 42", v)
	}
}

func TestGlobalRegistry_Get_Missing(t *testing.T) {
	_, ok := GlobalRegistry.GetGlobal("test:missing")
	if ok {
		t.Error("GetGlobal missing key: want false")
	}
}

func TestGlobalRegistry_Lock(t *testing.T) {
	key := "test:lock"
	if GlobalRegistry.IsLocked(key) {
		t.Fatal("key locked before Lock")
	}
	GlobalRegistry.Lock(key)
	if !GlobalRegistry.IsLocked(key) {
		t.Error("IsLocked after Lock: want true")
	}
	GlobalRegistry.UnlockForTesting(key)
	if GlobalRegistry.IsLocked(key) {
		t.Error("IsLocked after UnlockForTesting: want false")
	}
}
