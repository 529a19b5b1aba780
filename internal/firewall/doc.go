// Package firewall renders the router configuration as an nftables script.
//
// # Overview
//
//	*config.Router → Render → raw script → Normalize → ruleset
//
// [Render] executes the embedded router.nft.tmpl. The template is written
// for readability and leaves loose blank lines; [Normalize] puts the text
// into its canonical layout so output is stable between runs.
//
// On Linux, [NewLiveSource] summarizes the chains currently loaded in the
// kernel for the status command and the interactive menu.
package firewall
