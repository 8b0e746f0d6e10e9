package repo

// Persisted key names. These are the storage contract; renaming any of
// them orphans data written by earlier builds.
const (
	keyUsers     = "usuarios"
	keyProposals = "propostas"
	keySession   = "loggedUser"
	keyConsent   = "cookiesAccepted"
)
