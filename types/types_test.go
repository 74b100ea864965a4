package types

import "testing"

func TestEqualsWildcard(t *testing.T) {
	tests := []struct {
		name string
		a, b Type
		want bool
	}{
		{"same int", IntType{32}, IntType{32}, true},
		{"different int", IntType{32}, IntType{64}, false},
		{"int wildcard", IntType{}, IntType{16}, true},
		{"uint wildcard", UintType{}, UintType{128}, true},
		{"float wildcard", FloatType{}, FloatType{16}, true},
		{"int vs uint", IntType{32}, UintType{32}, false},
		{"wildcard int vs uint", IntType{}, UintType{}, false},
		{"int vs float", IntType{}, FloatType{}, false},
		{"bool", BoolType{}, BoolType{}, true},
		{"bool vs int", BoolType{}, IntType{}, false},
		{"array wildcard", ArrayType{}, ArrayType{ElemType: IntType{8}}, true},
		{"array element wildcard", ArrayType{ElemType: IntType{}}, ArrayType{ElemType: IntType{8}}, true},
		{"array mismatch", ArrayType{ElemType: BoolType{}}, ArrayType{ElemType: IntType{8}}, false},
		{"nested arrays", ArrayType{ElemType: ArrayType{}}, ArrayType{ElemType: ArrayType{ElemType: BoolType{}}}, true},
		{"nil vs nil", nil, nil, true},
		{"nil vs bool", nil, BoolType{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equals(tt.a, tt.b); got != tt.want {
				t.Errorf("Equals(%s, %s) = %v, want %v", Repr(tt.a), Repr(tt.b), got, tt.want)
			}

			// equality must be symmetric
			if got := Equals(tt.b, tt.a); got != tt.want {
				t.Errorf("Equals(%s, %s) = %v, want %v", Repr(tt.b), Repr(tt.a), got, tt.want)
			}
		})
	}
}

func TestFromName(t *testing.T) {
	tests := []struct {
		name string
		want Type
		ok   bool
	}{
		{"int32", IntType{32}, true},
		{"int", IntType{}, true},
		{"int128", IntType{128}, true},
		{"uint8", UintType{8}, true},
		{"float16", FloatType{16}, true},
		{"float64", FloatType{64}, true},
		{"bool", BoolType{}, true},
		{"array", ArrayType{}, true},
		{"int7", nil, false},
		{"float8", nil, false},
		{"int032", nil, false},
		{"int+32", nil, false},
		{"integer", nil, false},
		{"string", nil, false},
		{"", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FromName(tt.name)
			if ok != tt.ok {
				t.Fatalf("FromName(%q) ok = %v, want %v", tt.name, ok, tt.ok)
			}

			if ok && got != tt.want {
				t.Errorf("FromName(%q) = %s, want %s", tt.name, Repr(got), Repr(tt.want))
			}
		})
	}
}

func TestRepr(t *testing.T) {
	tests := []struct {
		typ  Type
		want string
	}{
		{Int32, "int32"},
		{IntType{}, "int"},
		{UintType{64}, "uint64"},
		{FloatType{32}, "float32"},
		{Bool, "bool"},
		{ArrayType{}, "array"},
		{ArrayType{ElemType: Int32}, "array<int32>"},
		{nil, "none"},
	}

	for _, tt := range tests {
		if got := Repr(tt.typ); got != tt.want {
			t.Errorf("Repr() = %q, want %q", got, tt.want)
		}
	}
}

func TestIsWildcard(t *testing.T) {
	if IsWildcard(Int32) || IsWildcard(Bool) {
		t.Error("concrete types reported as wildcards")
	}

	if !IsWildcard(IntType{}) || !IsWildcard(ArrayType{ElemType: FloatType{}}) {
		t.Error("wildcard types not reported as wildcards")
	}
}
