package pricing

import (
	"testing"
)

func TestDiscountPercentFor_Tiers(t *testing.T) {
	want := []int{0, 20, 30, 40, 50, 50, 50, 50}
	for i, w := range want {
		copyIndex := i + 1
		if got := DiscountPercentFor(copyIndex); got != w {
			t.Errorf("DiscountPercentFor(%d) = %d, want %d", copyIndex, got, w)
		}
	}
}

func TestDiscountPercentFor_NonDecreasing(t *testing.T) {
	prev := DiscountPercentFor(1)
	for i := 2; i <= 100; i++ {
		cur := DiscountPercentFor(i)
		if cur < prev {
			t.Fatalf("DiscountPercentFor(%d) = %d < DiscountPercentFor(%d) = %d", i, cur, i-1, prev)
		}
		if cur > MaxDiscountPercent {
			t.Fatalf("DiscountPercentFor(%d) = %d exceeds cap %d", i, cur, MaxDiscountPercent)
		}
		prev = cur
	}
}

func TestPriceForCopy_Floors(t *testing.T) {
	tests := []struct {
		base, copy, want int
	}{
		{20, 1, 20},
		{20, 2, 16},
		{20, 3, 14},
		{25, 3, 17}, // 17.5 floors to 17
		{15, 4, 9},  // 9.0
		{25, 5, 12}, // 12.5 floors to 12
		{1, 2, 0},   // 0.8 floors to 0
	}
	for _, tt := range tests {
		if got := PriceForCopy(tt.base, tt.copy); got != tt.want {
			t.Errorf("PriceForCopy(%d, %d) = %d, want %d", tt.base, tt.copy, got, tt.want)
		}
	}
}

func TestComputeBreakdown_Example(t *testing.T) {
	b := ComputeBreakdown(20, 3)

	want := []CopyPrice{
		{Copy: 1, Discount: 0, Price: 20},
		{Copy: 2, Discount: 20, Price: 16},
		{Copy: 3, Discount: 30, Price: 14},
	}
	if len(b.Copies) != len(want) {
		t.Fatalf("len(Copies) = %d, want %d", len(b.Copies), len(want))
	}
	for i := range want {
		if b.Copies[i] != want[i] {
			t.Errorf("Copies[%d] = %+v, want %+v", i, b.Copies[i], want[i])
		}
	}
	if b.Total != 50 {
		t.Errorf("Total = %d, want 50", b.Total)
	}
	if b.Discount != 30 {
		t.Errorf("Discount = %d, want 30", b.Discount)
	}
	if b.UnitPrice != 20 || b.Quantity != 3 {
		t.Errorf("UnitPrice/Quantity = %d/%d, want 20/3", b.UnitPrice, b.Quantity)
	}
}

func TestComputeBreakdown_TotalMatchesSumAndUndercutsLinear(t *testing.T) {
	for base := 1; base <= 60; base++ {
		for n := 1; n <= 12; n++ {
			b := ComputeBreakdown(base, n)

			sum := 0
			for i := 1; i <= n; i++ {
				sum += PriceForCopy(base, i)
			}
			if b.Total != sum {
				t.Fatalf("ComputeBreakdown(%d, %d).Total = %d, want %d", base, n, b.Total, sum)
			}
			if b.Total != Total(base, n) {
				t.Fatalf("Total(%d, %d) = %d, breakdown says %d", base, n, Total(base, n), b.Total)
			}
			if n > 1 && b.Total >= base*n {
				t.Fatalf("ComputeBreakdown(%d, %d).Total = %d, want < %d", base, n, b.Total, base*n)
			}
		}
	}
}

func TestComputeBreakdown_SingleCopyHasNoDiscount(t *testing.T) {
	b := ComputeBreakdown(30, 1)
	if b.Total != 30 || b.Discount != 0 || len(b.Copies) != 1 {
		t.Fatalf("ComputeBreakdown(30, 1) = %+v, want total 30, discount 0, one copy", b)
	}
}

func TestComputeBreakdown_ZeroQuantityIsEmpty(t *testing.T) {
	b := ComputeBreakdown(30, 0)
	if b.Total != 0 || len(b.Copies) != 0 {
		t.Fatalf("ComputeBreakdown(30, 0) = %+v, want empty", b)
	}
}

func TestSavings(t *testing.T) {
	// 30 + 24 = 54 vs 60 linear
	if got := Savings(30, 2); got != 6 {
		t.Fatalf("Savings(30, 2) = %d, want 6", got)
	}
	if got := Savings(30, 1); got != 0 {
		t.Fatalf("Savings(30, 1) = %d, want 0", got)
	}
}

func TestDiscountExamples(t *testing.T) {
	got := DiscountExamples(25)
	want := "25 pts · 2nd −20% = 20 · 3rd −30% = 17 · 4th −40% = 15 · 5+ −50% = 12"
	if got != want {
		t.Fatalf("DiscountExamples(25) = %q, want %q", got, want)
	}
}
