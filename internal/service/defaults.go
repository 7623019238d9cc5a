package service

// DefaultTags is the starter tag set copied into every new user's catalog.
var DefaultTags = []TagTemplate{
	{Name: "Gi"},
	{Name: "No-Gi"},
	{Name: "Submission"},
	{Name: "Guard"},
	{Name: "Pass"},
	{Name: "Sweep"},
	{Name: "Escape"},
	{Name: "Takedown"},
	{Name: "Control"},
	{Name: "Defense"},
	{Name: "Attack"},
	{Name: "Transition"},
	{Name: "Pressure"},
	{Name: "Speed"},
	{Name: "Strategy"},
	{Name: "Positioning"},
	{Name: "Drills"},
	{Name: "Fundamentals"},
	{Name: "Advanced"},
	{Name: "Competition"},
	{Name: "Leglock"},
	{Name: "Tight Passing"},
	{Name: "Loose Passing"},
	{Name: "Armlock"},
	{Name: "Shoulderlock"},
	{Name: "Choke"},
	{Name: "Compression Lock"},
	{Name: "Kneebar"},
	{Name: "Heel Hook"},
	{Name: "Positional Control"},
	{Name: "Reversal"},
	{Name: "Scramble"},
	{Name: "Wrestling"},
	{Name: "Judo"},
	{Name: "Grip Fighting"},
	{Name: "Pressure Passing"},
	{Name: "Flow Passing"},
	{Name: "Guard Retention"},
	{Name: "Baiting"},
	{Name: "Counter"},
}

// DefaultTechniques is the starter technique set. Tag names must match
// DefaultTags entries; unresolvable names are silently dropped by the
// bootstrap, so the list is covered by a test.
var DefaultTechniques = []TechniqueTemplate{
	{
		Name:        "Armbar",
		Description: "<p>Hyperextension of the elbow, finished from mount, guard, or side control.</p>",
		Tags:        []string{"Submission", "Armlock", "Attack"},
	},
	{
		Name:        "Triangle Choke",
		Description: "<p>Strangle using the legs, typically attacked from closed guard.</p>",
		Tags:        []string{"Submission", "Choke", "Guard"},
	},
	{
		Name:        "Kimura",
		Description: "<p>Double wrist lock attacking the shoulder, available from guard, side control, and north-south.</p>",
		Tags:        []string{"Submission", "Shoulderlock"},
	},
	{
		Name:        "Rear Naked Choke",
		Description: "<p>Strangle from back control. The highest-percentage finish in the sport.</p>",
		Tags:        []string{"Submission", "Choke", "Control"},
	},
	{
		Name:        "Scissor Sweep",
		Description: "<p>Fundamental closed guard sweep using a scissoring leg motion.</p>",
		Tags:        []string{"Sweep", "Guard", "Fundamentals"},
	},
	{
		Name:        "Hip Bump Sweep",
		Description: "<p>Closed guard sweep driving the hips into a posting opponent; chains with the kimura and guillotine.</p>",
		Tags:        []string{"Sweep", "Guard", "Fundamentals"},
	},
	{
		Name:        "Knee Cut Pass",
		Description: "<p>Pressure pass slicing the knee across the bottom player's thigh.</p>",
		Tags:        []string{"Pass", "Tight Passing", "Pressure Passing"},
	},
	{
		Name:        "Toreando Pass",
		Description: "<p>Standing pass redirecting the legs like a bullfighter.</p>",
		Tags:        []string{"Pass", "Loose Passing", "Speed"},
	},
	{
		Name:        "Elbow Escape",
		Description: "<p>Shrimping escape from mount back to guard. The first escape everyone learns.</p>",
		Tags:        []string{"Escape", "Fundamentals", "Defense"},
	},
	{
		Name:        "Upa Escape",
		Description: "<p>Bridge-and-roll escape from mount against an overcommitted top player.</p>",
		Tags:        []string{"Escape", "Reversal", "Fundamentals"},
	},
	{
		Name:        "Double Leg Takedown",
		Description: "<p>Wrestling shot through both legs with a penetration step.</p>",
		Tags:        []string{"Takedown", "Wrestling"},
	},
	{
		Name:        "Straight Ankle Lock",
		Description: "<p>Entry-level leglock from ashi garami; legal at every belt.</p>",
		Tags:        []string{"Submission", "Leglock", "Fundamentals"},
	},
}
