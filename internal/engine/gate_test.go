package engine

import (
	"reflect"
	"testing"
)

func TestResolveGateBands(t *testing.T) {
	cases := []struct {
		bankroll float64
		want     Gate
	}{
		{20, Gate{MaxSlipsPerDay: 1, AllowedSizes: []int{2}, StakePerSlip: 5, MaxDailyRisk: 5}},
		{49.99, Gate{MaxSlipsPerDay: 1, AllowedSizes: []int{2}, StakePerSlip: 5, MaxDailyRisk: 5}},
		{50, Gate{MaxSlipsPerDay: 1, AllowedSizes: []int{3, 2}, StakePerSlip: 5, MaxDailyRisk: 5}},
		{84.99, Gate{MaxSlipsPerDay: 1, AllowedSizes: []int{3, 2}, StakePerSlip: 5, MaxDailyRisk: 5}},
		{85, Gate{MaxSlipsPerDay: 2, AllowedSizes: []int{3, 2}, StakePerSlip: 5, MaxDailyRisk: 10, Allow4Pick: true}},
		{149, Gate{MaxSlipsPerDay: 2, AllowedSizes: []int{3, 2}, StakePerSlip: 5, MaxDailyRisk: 10, Allow4Pick: true}},
		{150, Gate{MaxSlipsPerDay: 2, AllowedSizes: []int{3, 4, 5, 2}, StakePerSlip: 5, MaxDailyRisk: 10, Allow4Pick: true, Allow6Pick: true}},
		{5000, Gate{MaxSlipsPerDay: 2, AllowedSizes: []int{3, 4, 5, 2}, StakePerSlip: 5, MaxDailyRisk: 10, Allow4Pick: true, Allow6Pick: true}},
	}
	for _, c := range cases {
		if got := ResolveGate(c.bankroll); !reflect.DeepEqual(got, c.want) {
			t.Fatalf("bankroll %v: expected %+v, got %+v", c.bankroll, c.want, got)
		}
	}
}
