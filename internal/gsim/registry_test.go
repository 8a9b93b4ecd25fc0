package gsim

import (
	"errors"
	"testing"
)

func TestRegisterAndGetModel(t *testing.T) {
	name := "RegistryTestModel"
	if err := RegisterModel(name, func() Model { return newFakeModel() }); err != nil {
		t.Fatalf("register: %v", err)
	}

	model, err := GetModel(name)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if model.Name() != "Fake" {
		t.Fatalf("constructed model name = %q", model.Name())
	}

	if err := RegisterModel(name, func() Model { return newFakeModel() }); !errors.Is(err, ErrModelExists) {
		t.Fatalf("duplicate register: got %v, want ErrModelExists", err)
	}
}

func TestRegisterModelValidation(t *testing.T) {
	if err := RegisterModel("", func() Model { return newFakeModel() }); err == nil {
		t.Fatal("empty name accepted")
	}
	if err := RegisterModel("NilConstructor", nil); err == nil {
		t.Fatal("nil constructor accepted")
	}
}

func TestGetModelNotFound(t *testing.T) {
	if _, err := GetModel("NoSuchModel"); !errors.Is(err, ErrModelNotFound) {
		t.Fatalf("got %v, want ErrModelNotFound", err)
	}
}

func TestListModelsSorted(t *testing.T) {
	names := ListModels()
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("names not sorted: %v", names)
		}
	}
}
