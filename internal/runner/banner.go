package runner

import (
	"github.com/projectdiscovery/gologger"
	updateutils "github.com/projectdiscovery/utils/update"
)

var banner = `
                          __                         __  
 _      ______  _________/ /___ __________ _____  / /_ 
| | /| / / __ \/ ___/ __  / __ '/ ___/ __ '/ __ \/ __ \
| |/ |/ / /_/ / /  / /_/ / /_/ / /  / /_/ / /_/ / / / /
|__/|__/\____/_/   \__,_/\__, /_/   \__,_/ .___/_/ /_/ 
                        /____/          /_/            
`

var version = "v0.0.1"

// showBanner is used to show the banner to the user
func showBanner() {
	gologger.Print().Msgf("%s\n", banner)
	gologger.Print().Msgf("\t\tprojectdiscovery.io\n\n")
}

// GetUpdateCallback returns a callback function that updates wordgraph
func GetUpdateCallback() func() {
	return func() {
		showBanner()
		updateutils.GetUpdateToolCallback("wordgraph", version)()
	}
}
