// Package kyber768 implements the Kyber-768 key encapsulation mechanism: a
// lattice-based KEM whose security rests on the Module Learning-With-Errors
// problem over Rq = Zq[X]/(X²⁵⁶ + 1), q = 3329, with module rank 3.
//
// The API works on fixed-size byte buffers:
//
//	public key     1184 bytes  ρ ‖ encode(t̂)
//	secret key     2400 bytes  encode(ŝ) ‖ public key ‖ H(public key) ‖ z
//	ciphertext     1088 bytes  compress(u, 10) ‖ compress(v, 4)
//	shared secret    32 bytes
//
// Basic usage:
//
//	kp, err := kyber768.GenerateKeyPair()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Sender
//	ct, ss, err := kyber768.Encapsulate(kp.PublicKey)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Recipient
//	ss2, err := kyber768.Decapsulate(kp.SecretKey, ct)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// ss and ss2 are equal.
//
// Decapsulation uses implicit rejection: a tampered ciphertext still yields a
// 32-byte secret, derived from the secret rejection value z, and no error.
// The two paths run the same sequence of operations.
//
// All functions are safe for concurrent use. The only package-level state
// is read-only precomputed tables.
package kyber768
