// Command micromet turns raw field-campaign instrument exports into the
// numeric artifacts behind the analysis plots.
package main

import "github.com/lgoerner/micromet/cmd"

func main() {
	cmd.Execute()
}
