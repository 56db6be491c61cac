package internal

// Version is the current mdglot version
const Version = "0.2.0"
