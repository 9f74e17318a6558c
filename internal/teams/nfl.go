package teams

// nflTeams lists all 32 NFL teams with the alias spellings seen on
// picksheets: nicknames, city names, and wire abbreviations. Order is
// significant: resolution scans in catalog order and first match wins.
var nflTeams = []Team{
	// AFC East
	{Name: "Buffalo Bills", Aliases: []string{"Bills", "Buffalo", "BUF"}},
	{Name: "Miami Dolphins", Aliases: []string{"Dolphins", "Miami", "MIA"}},
	{Name: "New England Patriots", Aliases: []string{"Patriots", "New England", "Pats", "NE"}},
	{Name: "New York Jets", Aliases: []string{"Jets", "NY Jets", "NYJ"}},

	// AFC North
	{Name: "Baltimore Ravens", Aliases: []string{"Ravens", "Baltimore", "BAL"}},
	{Name: "Cincinnati Bengals", Aliases: []string{"Bengals", "Cincinnati", "Cincy", "CIN"}},
	{Name: "Cleveland Browns", Aliases: []string{"Browns", "Cleveland", "CLE"}},
	{Name: "Pittsburgh Steelers", Aliases: []string{"Steelers", "Pittsburgh", "Pitt", "PIT"}},

	// AFC South
	{Name: "Houston Texans", Aliases: []string{"Texans", "Houston", "HOU"}},
	{Name: "Indianapolis Colts", Aliases: []string{"Colts", "Indianapolis", "Indy", "IND"}},
	{Name: "Jacksonville Jaguars", Aliases: []string{"Jaguars", "Jacksonville", "Jags", "JAX", "JAC"}},
	{Name: "Tennessee Titans", Aliases: []string{"Titans", "Tennessee", "TEN"}},

	// AFC West
	{Name: "Denver Broncos", Aliases: []string{"Broncos", "Denver", "DEN"}},
	{Name: "Kansas City Chiefs", Aliases: []string{"Chiefs", "Kansas City", "KC", "KC Chiefs"}},
	{Name: "Las Vegas Raiders", Aliases: []string{"Raiders", "Las Vegas", "LV", "LVR", "Oakland Raiders"}},
	{Name: "Los Angeles Chargers", Aliases: []string{"Chargers", "LA Chargers", "L.A. Chargers", "LAC", "San Diego Chargers"}},

	// NFC East
	{Name: "Dallas Cowboys", Aliases: []string{"Cowboys", "Dallas", "DAL"}},
	{Name: "New York Giants", Aliases: []string{"Giants", "NY Giants", "NYG"}},
	{Name: "Philadelphia Eagles", Aliases: []string{"Eagles", "Philadelphia", "Philly", "PHI"}},
	{Name: "Washington Commanders", Aliases: []string{"Commanders", "Washington", "WAS", "Washington Football Team", "Redskins"}},

	// NFC North
	{Name: "Chicago Bears", Aliases: []string{"Bears", "Chicago", "CHI"}},
	{Name: "Detroit Lions", Aliases: []string{"Lions", "Detroit", "DET"}},
	{Name: "Green Bay Packers", Aliases: []string{"Packers", "Green Bay", "GB", "GBP"}},
	{Name: "Minnesota Vikings", Aliases: []string{"Vikings", "Minnesota", "MIN"}},

	// NFC South
	{Name: "Atlanta Falcons", Aliases: []string{"Falcons", "Atlanta", "ATL"}},
	{Name: "Carolina Panthers", Aliases: []string{"Panthers", "Carolina", "CAR"}},
	{Name: "New Orleans Saints", Aliases: []string{"Saints", "New Orleans", "NO", "NOS"}},
	{Name: "Tampa Bay Buccaneers", Aliases: []string{"Buccaneers", "Tampa Bay", "Tampa", "Bucs", "TB", "TBB"}},

	// NFC West
	{Name: "Arizona Cardinals", Aliases: []string{"Cardinals", "Arizona", "ARI", "AZ"}},
	{Name: "Los Angeles Rams", Aliases: []string{"Rams", "LA Rams", "L.A. Rams", "LAR", "St. Louis Rams"}},
	{Name: "San Francisco 49ers", Aliases: []string{"49ers", "San Francisco", "SF", "SFO", "Niners"}},
	{Name: "Seattle Seahawks", Aliases: []string{"Seahawks", "Seattle", "SEA"}},
}
