package models

// BranchPair is the production/homologation branch couple derived for one
// ticket, e.g. "ZUP-42-prd" / "ZUP-42-hml".
type BranchPair struct {
	Production   string
	Homologation string
}
