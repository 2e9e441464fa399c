package filter

import (
	"testing"

	"github.com/user/ffcmd/internal/params"
)

func TestChainRendersCapableFiltersOnly(t *testing.T) {
	// Clip has no CLI rendering capability and must contribute nothing,
	// not even a separator.
	chain := NewChain(NewClip("00:00:05", "10"), NewCustom("filter_2"))

	got, err := chain.FFmpegCLIValue()
	if err != nil {
		t.Fatalf("FFmpegCLIValue() unexpected error: %v", err)
	}
	if got != "filter_2" {
		t.Errorf("FFmpegCLIValue() = %q, want %q", got, "filter_2")
	}
}

func TestChainJoinsCapableFiltersInOrder(t *testing.T) {
	chain := NewChain(
		NewCrop(CropWidth(640), CropHeight(480)),
		NewClip("0", "5"),
		NewScale(1280, -1),
	)

	got, err := chain.FFmpegCLIValue()
	if err != nil {
		t.Fatalf("FFmpegCLIValue() unexpected error: %v", err)
	}
	want := "crop=w=640:h=480,scale=1280:-1"
	if got != want {
		t.Errorf("FFmpegCLIValue() = %q, want %q", got, want)
	}
}

func TestChainEmptyRenderingFails(t *testing.T) {
	tests := []struct {
		name  string
		chain *Chain
	}{
		{name: "no filters", chain: NewChain()},
		{name: "only inert filters", chain: NewChain(NewClip("0", "5"))},
		{name: "only empty renderings", chain: NewChain(NewCustom(""))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.chain.FFmpegCLIValue()
			if err == nil {
				t.Fatal("FFmpegCLIValue() expected error but got none")
			}
			if !params.IsCode(err, params.ErrCodeUnsupportedParamValue) {
				t.Errorf("FFmpegCLIValue() error = %v, want code %s",
					err, params.ErrCodeUnsupportedParamValue)
			}
		})
	}
}

func TestAddFiltersRejectsNonFilters(t *testing.T) {
	tests := []struct {
		name string
		item any
	}{
		{name: "plain string", item: "crop=w=100"},
		{name: "integer", item: 42},
		{name: "unrelated struct", item: struct{ X int }{X: 1}},
		{name: "nil", item: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chain := NewChain(NewCustom("first"))
			err := chain.AddFilters(NewCustom("second"), tt.item)
			if err == nil {
				t.Fatal("AddFilters() accepted a non-filter element")
			}
			if !params.IsCode(err, params.ErrCodeInvalidArgument) {
				t.Errorf("AddFilters() error = %v, want code %s",
					err, params.ErrCodeInvalidArgument)
			}
			// Batch is atomic: the valid leading element is not committed
			if n := len(chain.Filters()); n != 1 {
				t.Errorf("chain has %d filters after failed batch, want 1", n)
			}
		})
	}
}

func TestAddFiltersCommitsValidBatch(t *testing.T) {
	chain := NewChain()
	if err := chain.AddFilters(NewCustom("a"), NewClip("0", "1"), NewCustom("b")); err != nil {
		t.Fatalf("AddFilters() unexpected error: %v", err)
	}
	if n := len(chain.Filters()); n != 3 {
		t.Fatalf("chain has %d filters, want 3", n)
	}
}

func TestFiltersPreservesOrderAndIdentity(t *testing.T) {
	first := NewCustom("first")
	second := NewCrop(CropWidth(10))
	third := NewClip("0", "1")

	chain := NewChain()
	chain.AddFilter(first).AddFilter(second).AddFilter(third)

	got := chain.Filters()
	if len(got) != 3 {
		t.Fatalf("Filters() returned %d filters, want 3", len(got))
	}
	if got[0] != Filter(first) || got[1] != Filter(second) || got[2] != Filter(third) {
		t.Error("Filters() did not return the stored instances in insertion order")
	}
}

func TestChainSatisfiesCLIValuer(t *testing.T) {
	var _ params.CLIValuer = NewChain()
}
