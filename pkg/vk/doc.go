// Package vk implements a typed client for the audio section of the VK web API.
// Every operation maps a method signature onto a remote procedure name and a flat
// parameter set, sends it through an injected Caller, and projects the reply into
// domain records. The package carries no state between calls: authentication,
// retries, and rate limiting belong to the transport behind the Caller.
package vk
