package draw

// PlanGroups computes how many groups participants split into and how many
// members the uneven group holds.
func PlanGroups(participants, membersPerGroup int) GroupPlan {
	plan := GroupPlan{
		Participants:    participants,
		MembersPerGroup: membersPerGroup,
	}
	if participants <= 0 || membersPerGroup <= 0 {
		return plan
	}

	plan.TotalGroups = participants / membersPerGroup
	plan.Remainder = participants % membersPerGroup
	if plan.Remainder != 0 {
		plan.TotalGroups++
	}
	plan.PerfectDivision = plan.Remainder == 0
	return plan
}

// PartitionGroups shuffles participants and splits them into
// ceil(len(participants) / cfg.MembersPerGroup) groups.
//
// With cfg.DistributeEvenly the shuffled participants are dealt round-robin,
// so sizes differ by at most one and the first groups take the extra
// members. Otherwise groups are filled to cfg.MembersPerGroup in order and the
// last group holds the remainder.
//
// No participants, or a non-positive group size, yields no groups.
func PartitionGroups(r RNG, participants []string, cfg GroupConfig) [][]string {
	plan := PlanGroups(len(participants), cfg.MembersPerGroup)
	if plan.TotalGroups == 0 {
		return [][]string{}
	}

	order := shuffled(r, participants)
	groups := make([][]string, plan.TotalGroups)
	for i := range groups {
		groups[i] = make([]string, 0, min(cfg.MembersPerGroup, len(order)))
	}

	if cfg.DistributeEvenly {
		for i, name := range order {
			g := i % plan.TotalGroups
			groups[g] = append(groups[g], name)
		}
		return groups
	}

	current := 0
	for _, name := range order {
		if len(groups[current]) >= cfg.MembersPerGroup && current < plan.TotalGroups-1 {
			current++
		}
		groups[current] = append(groups[current], name)
	}
	return groups
}
