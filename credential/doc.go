// Package credential defines the configuration model for bearer-token
// authentication schemes.
//
// A Credential describes one scheme: the HTTP header to inspect, an
// optional token prefix, the signing algorithm, the encoded key material,
// and an optional pinned issuer. Settings holds the ordered list of
// credentials; order matters because scheme selection is first-match-wins.
//
// Settings are constructed once at startup, validated eagerly, and never
// mutated afterwards. Key material is wrapped in the Secret type so it
// cannot leak through logs or serialized output.
package credential
