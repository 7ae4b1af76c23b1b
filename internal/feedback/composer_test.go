package feedback

import (
	"strings"
	"testing"

	"github.com/abhisek/gradewise/internal/reward"
)

func TestCompose_Bands(t *testing.T) {
	tests := []struct {
		name             string
		score            float64
		tier             reward.Type
		wantText         string
		strengths        int
		improvementAreas int
		tips             int
	}{
		{
			name:             "high band",
			score:            0.92,
			tier:             reward.Platinum,
			wantText:         "excellent understanding of this topic",
			strengths:        3,
			improvementAreas: 0,
			tips:             2,
		},
		{
			name:             "high band lower edge",
			score:            0.8,
			tier:             reward.Gold,
			wantText:         "excellent understanding of this topic",
			strengths:        3,
			improvementAreas: 0,
			tips:             2,
		},
		{
			name:             "mid band",
			score:            0.7,
			tier:             reward.Silver,
			wantText:         "on the right track",
			strengths:        2,
			improvementAreas: 2,
			tips:             3,
		},
		{
			name:             "mid band lower edge",
			score:            0.6,
			tier:             reward.Bronze,
			wantText:         "on the right track",
			strengths:        2,
			improvementAreas: 2,
			tips:             3,
		},
		{
			name:             "low band",
			score:            0.3,
			tier:             reward.Bronze,
			wantText:         "Keep working on this topic",
			strengths:        1,
			improvementAreas: 2,
			tips:             4,
		},
		{
			name:             "zero score",
			score:            0,
			tier:             reward.Bronze,
			wantText:         "Keep working on this topic",
			strengths:        1,
			improvementAreas: 2,
			tips:             4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Compose(tt.score, tt.tier)

			if !strings.Contains(c.Text, tt.wantText) {
				t.Errorf("Text = %q, want it to contain %q", c.Text, tt.wantText)
			}
			if len(c.Strengths) != tt.strengths {
				t.Errorf("Strengths = %d, want %d", len(c.Strengths), tt.strengths)
			}
			if len(c.ImprovementAreas) != tt.improvementAreas {
				t.Errorf("ImprovementAreas = %d, want %d", len(c.ImprovementAreas), tt.improvementAreas)
			}
			if len(c.Tips) != tt.tips {
				t.Errorf("Tips = %d, want %d", len(c.Tips), tt.tips)
			}
		})
	}
}

func TestCompose_OpensWithTierPhrase(t *testing.T) {
	for _, tier := range reward.AllTypes() {
		c := Compose(0.95, tier)
		if !strings.HasPrefix(c.Text, reward.Description(tier)) {
			t.Errorf("Text for %s = %q, want prefix %q", tier, c.Text, reward.Description(tier))
		}
	}
}

func TestCompose_EveryBandOffersTips(t *testing.T) {
	for _, score := range []float64{0.95, 0.7, 0.2} {
		if c := Compose(score, reward.Classify(score).Tier); len(c.Tips) == 0 {
			t.Errorf("score %.2f composed no tips", score)
		}
	}
}
