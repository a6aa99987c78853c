package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"checkout": map[string]any{
			"deliveryCharge":  "3",
			"referencePrefix": "GD",
		},
		"cart": map[string]any{
			"keyPrefix": "light3d-cart",
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "CHECKOUT_DELIVERYCHARGE", want: "checkout.deliveryCharge"},
		{envKey: "CHECKOUT_REFERENCEPREFIX", want: "checkout.referencePrefix"},
		{envKey: "CART_KEYPREFIX", want: "cart.keyPrefix"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
