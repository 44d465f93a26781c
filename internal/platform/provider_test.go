package platform

import (
	"runtime"
	"testing"
)

func TestNewProvider_ReturnsProvider(t *testing.T) {
	if runtime.GOOS != "darwin" {
		t.Skip("skipping on non-darwin")
	}
	// The darwin package is only registered when imported for side effects,
	// so just verify the call doesn't panic.
	_, _ = NewProvider()
}

func TestNewProvider_UnsupportedPlatform(t *testing.T) {
	orig := NewProviderFunc
	NewProviderFunc = nil
	defer func() { NewProviderFunc = orig }()

	_, err := NewProvider()
	if err == nil {
		t.Fatal("expected error on unsupported platform")
	}
	if err != ErrUnsupported {
		t.Errorf("expected ErrUnsupported, got: %v", err)
	}
}

func TestProvider_Validate(t *testing.T) {
	var nilProvider *Provider
	if err := nilProvider.Validate(); err == nil {
		t.Error("nil provider should fail validation")
	}
	if err := (&Provider{}).Validate(); err == nil {
		t.Error("empty provider should fail validation")
	}
}
