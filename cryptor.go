package textbookrsa

import "math/big"

// Encrypt reads msg as a big-endian unsigned integer m and returns
// c = m^e mod n.
//
// No padding is applied. If m >= n the result decrypts to m mod n rather than
// m; see CheckMessage.
func (k *PublicKey) Encrypt(msg []byte) *big.Int {
	m := new(big.Int).SetBytes(msg)
	return m.Exp(m, k.e, k.n)
}

// Decrypt returns m = c^d mod n as its minimal big-endian encoding. A nil
// ciphertext is treated as zero and decrypts to an empty slice.
func (kp *KeyPair) Decrypt(c *big.Int) []byte {
	if c == nil {
		return []byte{}
	}
	m := new(big.Int).Exp(c, kp.d, kp.pub.n)
	return m.Bytes()
}
