package repository

import "github.com/ahmednasr/triage-assist/server/internal/models"

// DefaultGuides is the built‑in runbook set loaded when SEED_DEFAULT_CORPUS is on.
func DefaultGuides() []models.Guide {
	return []models.Guide{
		{
			ID:    "g-001",
			Title: "VPN Failure After Patch",
			Body:  "After KB-774 patch, some endpoints fail VPN handshake. Roll back patch, restart tunnel service, renew certificates, and verify split-tunnel policy propagation. If failures persist, reimage agent and reapply policy.",
		},
		{
			ID:    "g-002",
			Title: "DNS Resolution Issues",
			Body:  "If DNS resolution fails, check endpoint policy for DoH overrides. Flush DNS cache, reset network stack, and validate resolver allowlist. Temporary policy exception may be required.",
		},
	}
}

// DefaultTickets is the built‑in ticket history loaded alongside DefaultGuides.
func DefaultTickets() []models.Ticket {
	return []models.Ticket{
		{
			ID:               "t-1121",
			Summary:          "VPN disconnects after macOS update",
			Resolution:       "Rollback KB-774, restart tunnel service, refresh certs.",
			Success:          true,
			MinutesToResolve: 38,
		},
		{
			ID:               "t-1188",
			Summary:          "VPN fails post endpoint patch",
			Resolution:       "Rollback patch, reapply split-tunnel policy.",
			Success:          true,
			MinutesToResolve: 44,
		},
		{
			ID:               "t-1304",
			Summary:          "DNS not resolving after policy update",
			Resolution:       "Reset network stack, remove DoH override, clear cache.",
			Success:          true,
			MinutesToResolve: 36,
		},
	}
}
