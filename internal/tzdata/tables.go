package tzdata

// Built-in tables for common zones, covering late 2023 through 2027. Instants
// are the real IANA transition boundaries (unix milliseconds); offsets are
// minutes behind UTC. Entries alternate daylight/standard starting with a
// daylight observance, so the parity convention used by the VTIMEZONE builder
// holds for each table.
var builtin = []*Table{
	{
		Name:    "UTC",
		Untils:  []int64{Sentinel},
		Offsets: []int{0},
		Abbrs:   []string{"UTC"},
	},
	{
		// No DST since 1945; a single fixed observance.
		Name:    "Asia/Kolkata",
		Untils:  []int64{Sentinel},
		Offsets: []int{-330},
		Abbrs:   []string{"IST"},
	},
	{
		Name: "America/New_York",
		Untils: []int64{
			1699164000000, // 2023-11-05T06:00Z
			1710054000000, // 2024-03-10T07:00Z
			1730613600000, // 2024-11-03T06:00Z
			1741503600000, // 2025-03-09T07:00Z
			1762063200000, // 2025-11-02T06:00Z
			1772953200000, // 2026-03-08T07:00Z
			1793512800000, // 2026-11-01T06:00Z
			1805007600000, // 2027-03-14T07:00Z
			Sentinel,
		},
		Offsets: []int{240, 300, 240, 300, 240, 300, 240, 300, 240},
		Abbrs:   []string{"EDT", "EST", "EDT", "EST", "EDT", "EST", "EDT", "EST", "EDT"},
	},
	{
		Name: "Europe/London",
		Untils: []int64{
			1698541200000, // 2023-10-29T01:00Z
			1711846800000, // 2024-03-31T01:00Z
			1729990800000, // 2024-10-27T01:00Z
			1743296400000, // 2025-03-30T01:00Z
			1761440400000, // 2025-10-26T01:00Z
			1774746000000, // 2026-03-29T01:00Z
			1792890000000, // 2026-10-25T01:00Z
			1806195600000, // 2027-03-28T01:00Z
			Sentinel,
		},
		Offsets: []int{-60, 0, -60, 0, -60, 0, -60, 0, -60},
		Abbrs:   []string{"BST", "GMT", "BST", "GMT", "BST", "GMT", "BST", "GMT", "BST"},
	},
	{
		Name: "Australia/Sydney",
		Untils: []int64{
			1712419200000, // 2024-04-06T16:00Z
			1728144000000, // 2024-10-05T16:00Z
			1743868800000, // 2025-04-05T16:00Z
			1759593600000, // 2025-10-04T16:00Z
			1775318400000, // 2026-04-04T16:00Z
			1791043200000, // 2026-10-03T16:00Z
			Sentinel,
		},
		Offsets: []int{-660, -600, -660, -600, -660, -600, -660},
		Abbrs:   []string{"AEDT", "AEST", "AEDT", "AEST", "AEDT", "AEST", "AEDT"},
	},
}

func init() {
	for _, t := range builtin {
		if err := Register(t); err != nil {
			panic(err)
		}
	}
}
