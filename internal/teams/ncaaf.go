package teams

// ncaafTeams covers the FBS programs that show up on office picksheets,
// plus a handful of FCS schools that occasionally play up. Aliases
// include short all-caps abbreviations; those feed the collegiate
// heuristic's abbreviation index. Order is significant.
var ncaafTeams = []Team{
	// SEC
	{Name: "Alabama Crimson Tide", Aliases: []string{"Alabama", "Bama", "Crimson Tide", "ALA"}},
	{Name: "Georgia Bulldogs", Aliases: []string{"Georgia", "UGA", "Bulldogs", "GA"}},
	{Name: "Florida Gators", Aliases: []string{"Florida", "UF", "Gators", "FLA"}},
	{Name: "Tennessee Volunteers", Aliases: []string{"Tennessee", "Vols", "UT", "TENN"}},
	{Name: "LSU Tigers", Aliases: []string{"LSU", "Louisiana State", "Louisiana St.", "Louisiana State University"}},
	{Name: "Auburn Tigers", Aliases: []string{"Auburn", "AU", "War Eagle", "AUB"}},
	{Name: "Texas A&M Aggies", Aliases: []string{"Texas A&M", "A&M", "TAMU", "Aggies"}},
	{Name: "Ole Miss Rebels", Aliases: []string{"Ole Miss", "Mississippi", "Miss", "MISS"}},
	{Name: "Mississippi State Bulldogs", Aliases: []string{"Mississippi State", "Mississippi St.", "Miss State", "MSU", "MSST"}},
	{Name: "Arkansas Razorbacks", Aliases: []string{"Arkansas", "Hogs", "ARK"}},
	{Name: "Kentucky Wildcats", Aliases: []string{"Kentucky", "UK", "Wildcats", "KY"}},
	{Name: "Missouri Tigers", Aliases: []string{"Missouri", "Mizzou", "MO", "MIZ"}},
	{Name: "South Carolina Gamecocks", Aliases: []string{"South Carolina", "USC", "Gamecocks", "SCAR"}},
	{Name: "Vanderbilt Commodores", Aliases: []string{"Vanderbilt", "Vandy", "Commodores", "VAN"}},

	// Big Ten
	{Name: "Ohio State Buckeyes", Aliases: []string{"Ohio State", "Ohio St.", "OSU", "Buckeyes", "OHST"}},
	{Name: "Michigan Wolverines", Aliases: []string{"Michigan", "U of M", "UM", "Wolverines", "MICH"}},
	{Name: "Michigan State Spartans", Aliases: []string{"Michigan State", "Michigan St.", "MSU", "Spartans", "MIST"}},
	{Name: "Penn State Nittany Lions", Aliases: []string{"Penn State", "Penn St.", "PSU", "Nittany Lions", "PENN"}},
	{Name: "Wisconsin Badgers", Aliases: []string{"Wisconsin", "Badgers", "WIS", "WISC"}},
	{Name: "Iowa Hawkeyes", Aliases: []string{"Iowa", "Hawkeyes", "IOWA"}},
	{Name: "Iowa State Cyclones", Aliases: []string{"Iowa State", "Iowa St.", "ISU", "Cyclones", "IAST"}},
	{Name: "Nebraska Cornhuskers", Aliases: []string{"Nebraska", "Huskers", "NEB", "NEBR"}},
	{Name: "Minnesota Golden Gophers", Aliases: []string{"Minnesota", "Gophers", "MINN", "MIN"}},
	{Name: "Indiana Hoosiers", Aliases: []string{"Indiana", "IU", "Hoosiers", "IND"}},
	{Name: "Illinois Fighting Illini", Aliases: []string{"Illinois", "Illini", "ILL", "ILLI"}},
	{Name: "Northwestern Wildcats", Aliases: []string{"Northwestern", "NU", "Wildcats", "NW"}},
	{Name: "Purdue Boilermakers", Aliases: []string{"Purdue", "Boilermakers", "PUR", "PURD"}},
	{Name: "Maryland Terrapins", Aliases: []string{"Maryland", "Terps", "Terrapins", "MD"}},
	{Name: "Rutgers Scarlet Knights", Aliases: []string{"Rutgers", "RU", "Scarlet Knights", "RUTG"}},

	// Big 12
	{Name: "Texas Longhorns", Aliases: []string{"Texas", "UT", "Longhorns", "TEX"}},
	{Name: "Oklahoma Sooners", Aliases: []string{"Oklahoma", "OU", "Sooners", "OKLA"}},
	{Name: "Oklahoma State Cowboys", Aliases: []string{"Oklahoma State", "Oklahoma St.", "OSU", "OK State", "OKST"}},
	{Name: "Texas Tech Red Raiders", Aliases: []string{"Texas Tech", "Tech", "TTU", "Red Raiders", "TXTC"}},
	{Name: "Baylor Bears", Aliases: []string{"Baylor", "BU", "Bears", "BAY"}},
	{Name: "TCU Horned Frogs", Aliases: []string{"TCU", "Texas Christian", "Horned Frogs"}},
	{Name: "Kansas Jayhawks", Aliases: []string{"Kansas", "KU", "Jayhawks", "KAN"}},
	{Name: "Kansas State Wildcats", Aliases: []string{"Kansas State", "Kansas St.", "K-State", "KSU", "KAST"}},
	{Name: "West Virginia Mountaineers", Aliases: []string{"West Virginia", "WVU", "Mountaineers", "WV"}},
	{Name: "Cincinnati Bearcats", Aliases: []string{"Cincinnati", "Cincy", "UC", "Bearcats", "CIN"}},
	{Name: "Houston Cougars", Aliases: []string{"Houston", "UH", "Cougars", "HOU"}},
	{Name: "UCF Knights", Aliases: []string{"UCF", "Central Florida", "Knights"}},
	{Name: "BYU Cougars", Aliases: []string{"BYU", "Brigham Young", "Cougars"}},

	// ACC
	{Name: "Clemson Tigers", Aliases: []string{"Clemson", "Tigers", "CLEM"}},
	{Name: "Florida State Seminoles", Aliases: []string{"Florida State", "Florida St.", "FSU", "Seminoles", "FLST"}},
	{Name: "Miami Hurricanes", Aliases: []string{"Miami", "The U", "Canes", "Hurricanes", "MIA"}},
	{Name: "North Carolina Tar Heels", Aliases: []string{"North Carolina", "UNC", "Tar Heels", "NC", "NCAR"}},
	{Name: "North Carolina State Wolfpack", Aliases: []string{"North Carolina State", "NC State", "NCSU", "Wolfpack", "NCST"}},
	{Name: "Duke Blue Devils", Aliases: []string{"Duke", "Blue Devils", "DUKE"}},
	{Name: "Virginia Cavaliers", Aliases: []string{"Virginia", "UVA", "Cavaliers", "VA"}},
	{Name: "Virginia Tech Hokies", Aliases: []string{"Virginia Tech", "VT", "Hokies", "VTECH"}},
	{Name: "Louisville Cardinals", Aliases: []string{"Louisville", "UL", "Cardinals", "LOU"}},
	{Name: "Syracuse Orange", Aliases: []string{"Syracuse", "Cuse", "Orange", "SYR"}},
	{Name: "Pittsburgh Panthers", Aliases: []string{"Pittsburgh", "Pitt", "Panthers", "PIT"}},
	{Name: "Boston College Eagles", Aliases: []string{"Boston College", "BC", "Eagles", "BOST"}},
	{Name: "Wake Forest Demon Deacons", Aliases: []string{"Wake Forest", "Wake", "Demon Deacons", "WAKE"}},
	{Name: "Georgia Tech Yellow Jackets", Aliases: []string{"Georgia Tech", "GT", "Yellow Jackets", "GATECH"}},

	// Pac-12
	{Name: "Oregon Ducks", Aliases: []string{"Oregon", "Ducks", "ORE", "OREG"}},
	{Name: "Oregon State Beavers", Aliases: []string{"Oregon State", "Oregon St.", "OSU", "Beavers", "ORST"}},
	{Name: "Washington Huskies", Aliases: []string{"Washington", "UW", "Huskies", "WASH"}},
	{Name: "Washington State Cougars", Aliases: []string{"Washington State", "Washington St.", "WSU", "Wazzu", "Cougars", "WAST"}},
	{Name: "USC Trojans", Aliases: []string{"USC", "Southern Cal", "Trojans"}},
	{Name: "UCLA Bruins", Aliases: []string{"UCLA", "Bruins"}},
	{Name: "Stanford Cardinal", Aliases: []string{"Stanford", "Cardinal", "STAN"}},
	{Name: "California Golden Bears", Aliases: []string{"California", "Cal", "Golden Bears", "CAL"}},
	{Name: "Arizona Wildcats", Aliases: []string{"Arizona", "UA", "Wildcats", "ARIZ"}},
	{Name: "Arizona State Sun Devils", Aliases: []string{"Arizona State", "Arizona St.", "ASU", "Sun Devils", "AZST"}},
	{Name: "Colorado Buffaloes", Aliases: []string{"Colorado", "CU", "Buffs", "Buffaloes", "COLO"}},
	{Name: "Utah Utes", Aliases: []string{"Utah", "Utes", "UTAH"}},

	// Independents and service academies
	{Name: "Notre Dame Fighting Irish", Aliases: []string{"Notre Dame", "ND", "Fighting Irish", "Irish"}},
	{Name: "Army Black Knights", Aliases: []string{"Army", "Black Knights", "ARMY"}},
	{Name: "Navy Midshipmen", Aliases: []string{"Navy", "Midshipmen", "NAVY"}},
	{Name: "Air Force Falcons", Aliases: []string{"Air Force", "Falcons", "AFA"}},

	// Group of Five
	{Name: "SMU Mustangs", Aliases: []string{"SMU", "Southern Methodist", "Mustangs"}},
	{Name: "Memphis Tigers", Aliases: []string{"Memphis", "Tigers", "MEM"}},
	{Name: "Tulane Green Wave", Aliases: []string{"Tulane", "Green Wave", "TULN"}},
	{Name: "Tulsa Golden Hurricane", Aliases: []string{"Tulsa", "Golden Hurricane", "TULS"}},
	{Name: "South Florida Bulls", Aliases: []string{"South Florida", "S. Florida", "USF", "Bulls"}},
	{Name: "Temple Owls", Aliases: []string{"Temple", "Owls", "TEM"}},
	{Name: "East Carolina Pirates", Aliases: []string{"East Carolina", "ECU", "Pirates"}},
	{Name: "Boise State Broncos", Aliases: []string{"Boise State", "Boise St.", "BSU", "Broncos", "BOIS"}},
	{Name: "Fresno State Bulldogs", Aliases: []string{"Fresno State", "Fresno St.", "Bulldogs", "FRES"}},
	{Name: "San Diego State Aztecs", Aliases: []string{"San Diego State", "San Diego St.", "SDSU", "Aztecs"}},
	{Name: "UNLV Rebels", Aliases: []string{"UNLV", "Nevada Las Vegas", "Rebels"}},
	{Name: "Nevada Wolf Pack", Aliases: []string{"Nevada", "Wolf Pack", "NEV"}},
	{Name: "Hawaii Rainbow Warriors", Aliases: []string{"Hawaii", "Rainbow Warriors", "HAW"}},
	{Name: "San Jose State Spartans", Aliases: []string{"San Jose State", "San Jose St.", "SJSU", "Spartans"}},

	{Name: "UAB Blazers", Aliases: []string{"UAB", "Alabama Birmingham", "Blazers"}},
	{Name: "UTSA Roadrunners", Aliases: []string{"UTSA", "UT San Antonio", "Roadrunners"}},
	{Name: "UTEP Miners", Aliases: []string{"UTEP", "UT El Paso", "Miners"}},
	{Name: "Rice Owls", Aliases: []string{"Rice", "Owls", "RICE"}},
	{Name: "North Texas Mean Green", Aliases: []string{"North Texas", "UNT", "Mean Green", "NTEX"}},
	{Name: "Charlotte 49ers", Aliases: []string{"Charlotte", "Charlotte 49ers", "CHAR", "49ers"}},
	{Name: "Marshall Thundering Herd", Aliases: []string{"Marshall", "Thundering Herd", "MRSH"}},
	{Name: "Western Michigan Broncos", Aliases: []string{"Western Michigan", "Western Mich", "WMU", "Broncos", "WMICH"}},
	{Name: "Central Michigan Chippewas", Aliases: []string{"Central Michigan", "Central Mich", "CMU", "Chippewas", "CMICH"}},
	{Name: "Eastern Michigan Eagles", Aliases: []string{"Eastern Michigan", "Eastern Mich", "EMU", "Eagles", "EMICH"}},
	{Name: "Northern Illinois Huskies", Aliases: []string{"Northern Illinois", "Northern Ill", "NIU", "Huskies", "NILL"}},
	{Name: "Toledo Rockets", Aliases: []string{"Toledo", "Rockets", "TOL"}},
	{Name: "Bowling Green Falcons", Aliases: []string{"Bowling Green", "BGSU", "Falcons", "BGWL"}},
	{Name: "Kent State Golden Flashes", Aliases: []string{"Kent State", "Kent St.", "Golden Flashes", "KENT"}},
	{Name: "Akron Zips", Aliases: []string{"Akron", "Zips", "AKR"}},
	{Name: "Ohio Bobcats", Aliases: []string{"Ohio", "Bobcats", "OHIO"}},
	{Name: "Miami (OH) RedHawks", Aliases: []string{"Miami (OH)", "Miami Ohio", "Miami-Ohio", "RedHawks", "MIOH"}},
	{Name: "Ball State Cardinals", Aliases: []string{"Ball State", "Ball St.", "Cardinals", "BALL"}},
	{Name: "Buffalo Bulls", Aliases: []string{"Buffalo", "Bulls", "BUFF"}},

	// FCS programs that sometimes play FBS
	{Name: "James Madison Dukes", Aliases: []string{"James Madison", "JMU", "Dukes", "JMAD"}},
	{Name: "Liberty Flames", Aliases: []string{"Liberty", "Flames", "LIB"}},
	{Name: "Jacksonville State Gamecocks", Aliases: []string{"Jacksonville State", "Jacksonville St.", "JSU", "Gamecocks", "JKST"}},
	{Name: "Sam Houston State Bearkats", Aliases: []string{"Sam Houston State", "Sam Houston St.", "SHSU", "Bearkats", "SHST"}},
	{Name: "Missouri State Bears", Aliases: []string{"Missouri State", "Missouri St.", "Bears", "MOST"}},
	{Name: "Arkansas State Red Wolves", Aliases: []string{"Arkansas State", "Arkansas St.", "Red Wolves", "ARST"}},
	{Name: "Georgia State Panthers", Aliases: []string{"Georgia State", "Georgia St.", "Panthers", "GAST"}},
	{Name: "Georgia Southern Eagles", Aliases: []string{"Georgia Southern", "Eagles", "GASOU"}},
	{Name: "Louisiana Tech Bulldogs", Aliases: []string{"Louisiana Tech", "La Tech", "Bulldogs", "LTECH"}},
	{Name: "UL Monroe Warhawks", Aliases: []string{"UL Monroe", "Louisiana Monroe", "ULM", "Warhawks", "ULMON"}},
	{Name: "South Alabama Jaguars", Aliases: []string{"South Alabama", "USA", "Jaguars", "SALA"}},
	{Name: "Troy Trojans", Aliases: []string{"Troy", "Trojans", "TROY"}},
	{Name: "Middle Tennessee Blue Raiders", Aliases: []string{"Middle Tennessee", "Middle Tenn", "MTSU", "Blue Raiders", "MTENN"}},
	{Name: "Western Kentucky Hilltoppers", Aliases: []string{"Western Kentucky", "WKU", "Hilltoppers", "WKEN"}},
	{Name: "FIU Panthers", Aliases: []string{"FIU", "Florida International", "Panthers"}},
	{Name: "FAU Owls", Aliases: []string{"FAU", "Florida Atlantic", "Owls"}},
	{Name: "Louisiana Ragin' Cajuns", Aliases: []string{"Louisiana", "Louisiana Lafayette", "ULL", "Ragin' Cajuns", "LALA"}},
	{Name: "New Mexico State Aggies", Aliases: []string{"New Mexico State", "New Mexico St.", "NMSU", "Aggies", "NMST"}},
	{Name: "New Mexico Lobos", Aliases: []string{"New Mexico", "Lobos", "NMEX"}},
	{Name: "Utah State Aggies", Aliases: []string{"Utah State", "Utah St.", "USU", "Aggies", "UTST"}},
	{Name: "Wyoming Cowboys", Aliases: []string{"Wyoming", "Cowboys", "WYO"}},
	{Name: "Colorado State Rams", Aliases: []string{"Colorado State", "Colorado St.", "CSU", "Rams", "COST"}},

	{Name: "Connecticut Huskies", Aliases: []string{"Connecticut", "UConn", "Huskies", "CONN"}},
	{Name: "UMass Minutemen", Aliases: []string{"UMass", "Massachusetts", "Minutemen", "UMAS"}},
	{Name: "Old Dominion Monarchs", Aliases: []string{"Old Dominion", "ODU", "Monarchs", "ODOM"}},
	{Name: "Coastal Carolina Chanticleers", Aliases: []string{"Coastal Carolina", "CCU", "Chanticleers", "CCAR"}},
	{Name: "Appalachian State Mountaineers", Aliases: []string{"Appalachian State", "App State", "Mountaineers", "APPS"}},
	{Name: "Texas State Bobcats", Aliases: []string{"Texas State", "Texas St.", "Bobcats", "TXST"}},
	{Name: "Southern Miss Golden Eagles", Aliases: []string{"Southern Miss", "Southern Mississippi", "USM", "Golden Eagles", "SMIS"}},
	{Name: "Delaware Blue Hens", Aliases: []string{"Delaware", "Blue Hens", "DEL"}},
	{Name: "Kennesaw State Owls", Aliases: []string{"Kennesaw State", "Kennesaw St.", "KSU", "Owls", "KENN"}},
}
