package linknet

// Version is the library version, set at release time.
var Version = "0.1.0"
