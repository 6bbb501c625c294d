package ephemeral

// SymmetricEcdhKey is an ephemeral symmetric key created with Elliptic Curve
// Diffie-Hellman key exchange, offering Encrypt and Decrypt.
type SymmetricEcdhKey struct {
	box *box
}

// Ecdh performs Elliptic Curve Diffie-Hellman operation between public and
// private key. The returned value is `SymmetricEcdhKey` that can be used
// for encryption and decryption.
func (pk *PrivateKey) Ecdh(publicKey *PublicKey) (*SymmetricEcdhKey, error) {
	shared, err := pk.key.ECDH(publicKey.key)
	if err != nil {
		return nil, err
	}

	var key [32]byte
	copy(key[:], shared)

	return &SymmetricEcdhKey{
		box: newBox(key),
	}, nil
}

// Encrypt plaintext.
func (sek *SymmetricEcdhKey) Encrypt(plaintext []byte) ([]byte, error) {
	return sek.box.encrypt(plaintext)
}

// Decrypt ciphertext.
func (sek *SymmetricEcdhKey) Decrypt(ciphertext []byte) (plaintext []byte, err error) {
	return sek.box.decrypt(ciphertext)
}
