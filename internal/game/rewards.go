package game

import "math/rand/v2"

// RewardPolicy controls the bomb supply: how many bombs a game starts with,
// the inclusive range of bombs granted by a shrine and an optional cap.
type RewardPolicy struct {
	Start int
	Min   int
	Max   int
	Cap   int // 0 means uncapped
}

// ClassicRewards grants one bomb per shrine, never holding more than five.
func ClassicRewards() RewardPolicy {
	return RewardPolicy{Start: 3, Min: 1, Max: 1, Cap: 5}
}

// GenerousRewards grants one to three bombs per shrine without a cap.
func GenerousRewards() RewardPolicy {
	return RewardPolicy{Start: 3, Min: 1, Max: 3}
}

// normalized repairs inconsistent values instead of rejecting them.
func (p RewardPolicy) normalized() RewardPolicy {
	if p.Start < 0 {
		p.Start = 0
	}
	if p.Min < 0 {
		p.Min = 0
	}
	if p.Max < p.Min {
		p.Max = p.Min
	}
	if p.Cap < 0 {
		p.Cap = 0
	}
	if p.Cap > 0 && p.Start > p.Cap {
		p.Start = p.Cap
	}
	return p
}

// draw picks a reward uniformly from [Min, Max].
func (p RewardPolicy) draw(rng *rand.Rand) int {
	return p.Min + rng.IntN(p.Max-p.Min+1)
}

// grant adds reward to bombs, respecting the cap.
func (p RewardPolicy) grant(bombs, reward int) int {
	bombs += reward
	if p.Cap > 0 && bombs > p.Cap {
		bombs = p.Cap
	}
	return bombs
}
