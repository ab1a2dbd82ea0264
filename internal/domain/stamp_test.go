package domain

import (
	"math"
	"testing"
)

func TestStamp_Sub_Borrow(t *testing.T) {
	tests := []struct {
		name string
		a, b Stamp
		want Stamp
	}{
		{
			name: "whole seconds",
			a:    Stamp{Sec: 10},
			b:    Stamp{Sec: 3},
			want: Stamp{Sec: 7},
		},
		{
			name: "borrow across second boundary",
			a:    Stamp{Sec: 10, Nsec: 0},
			b:    Stamp{Sec: 9, Nsec: 500000000},
			want: Stamp{Sec: 0, Nsec: 500000000},
		},
		{
			name: "borrow with nonzero minuend nanos",
			a:    Stamp{Sec: 10, Nsec: 200000000},
			b:    Stamp{Sec: 9, Nsec: 500000000},
			want: Stamp{Sec: 0, Nsec: 700000000},
		},
		{
			name: "negative result keeps positive nanos",
			a:    Stamp{Sec: 10, Nsec: 0},
			b:    Stamp{Sec: 10, Nsec: 500000000},
			want: Stamp{Sec: -1, Nsec: 500000000},
		},
		{
			name: "equal stamps",
			a:    Stamp{Sec: 42, Nsec: 7},
			b:    Stamp{Sec: 42, Nsec: 7},
			want: Stamp{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Sub(tt.b); got != tt.want {
				t.Errorf("Sub() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestStamp_Add_Carry(t *testing.T) {
	a := Stamp{Sec: 1, Nsec: 600000000}
	b := Stamp{Sec: 2, Nsec: 700000000}
	want := Stamp{Sec: 4, Nsec: 300000000}
	if got := a.Add(b); got != want {
		t.Errorf("Add() = %+v, want %+v", got, want)
	}
}

func TestStamp_Add_NegativeDelta(t *testing.T) {
	// Adding a negative offset walks an instant backwards.
	a := Stamp{Sec: 5, Nsec: 0}
	off := Stamp{Sec: -3, Nsec: 500000000} // -2.5s
	want := Stamp{Sec: 2, Nsec: 500000000}
	if got := a.Add(off); got != want {
		t.Errorf("Add() = %+v, want %+v", got, want)
	}
}

// add(subtract(a,b), b) == a for a >= b.
func TestStamp_RoundTrip(t *testing.T) {
	stamps := []Stamp{
		{Sec: 0, Nsec: 0},
		{Sec: 0, Nsec: 999999999},
		{Sec: 1, Nsec: 0},
		{Sec: 1577836800, Nsec: 123456789},
		{Sec: 1577836801, Nsec: 1},
	}
	for _, a := range stamps {
		for _, b := range stamps {
			if a.Sub(b).Negative() {
				continue
			}
			if got := a.Sub(b).Add(b); got != a {
				t.Errorf("Sub(%+v, %+v).Add = %+v, want %+v", a, b, got, a)
			}
		}
	}
}

func TestStamp_Add_Saturates(t *testing.T) {
	a := Stamp{Sec: math.MaxInt64, Nsec: 500000000}
	b := Stamp{Sec: 1, Nsec: 600000000}
	if got := a.Add(b); got != MaxStamp {
		t.Errorf("Add() = %+v, want MaxStamp", got)
	}
}

func TestStamp_Negative(t *testing.T) {
	if (Stamp{Sec: 0, Nsec: 1}).Negative() {
		t.Error("positive stamp reported negative")
	}
	if !(Stamp{Sec: -1, Nsec: 999999999}).Negative() {
		t.Error("negative stamp not reported")
	}
}
