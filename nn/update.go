package nn

import (
	"fmt"
)

// HardUpdate overwrites every parameter of dst with src's values.
// The two networks must be structurally identical; their tensors stay
// independently owned.
func HardUpdate(dst, src Parameterized) error {
	dp, sp := dst.Params(), src.Params()
	if len(dp) != len(sp) {
		return fmt.Errorf("hard update: %d target tensors vs %d source tensors", len(dp), len(sp))
	}
	for i := range dp {
		dr, dc := dp[i].Dims()
		sr, sc := sp[i].Dims()
		if dr != sr || dc != sc {
			return fmt.Errorf("hard update: tensor %d is (%d×%d) vs (%d×%d)", i, dr, dc, sr, sc)
		}
		dp[i].Copy(sp[i])
	}
	return nil
}

// SoftUpdate blends src into dst: dst = tau*dst + (1-tau)*src.
// The learning algorithm calls this on target networks each update.
func SoftUpdate(dst, src Parameterized, tau float64) error {
	if tau < 0 || tau > 1 {
		return fmt.Errorf("soft update: tau must be in [0,1], got %v", tau)
	}
	dp, sp := dst.Params(), src.Params()
	if len(dp) != len(sp) {
		return fmt.Errorf("soft update: %d target tensors vs %d source tensors", len(dp), len(sp))
	}
	for i := range dp {
		dr, dc := dp[i].Dims()
		sr, sc := sp[i].Dims()
		if dr != sr || dc != sc {
			return fmt.Errorf("soft update: tensor %d is (%d×%d) vs (%d×%d)", i, dr, dc, sr, sc)
		}
		for r := 0; r < dr; r++ {
			for c := 0; c < dc; c++ {
				dp[i].Set(r, c, tau*dp[i].At(r, c)+(1-tau)*sp[i].At(r, c))
			}
		}
	}
	return nil
}
