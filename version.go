package agentdeck

// Version is overridden at build time with -ldflags "-X github.com/aretw0/agentdeck.Version=...".
var Version = "dev"
