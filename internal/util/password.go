package util

import (
	"crypto/rand"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"strconv"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/crypto/scrypt"
)

// CredentialKind 标识 users.password 中保存的凭据格式
type CredentialKind int

const (
	CredentialPlaintext CredentialKind = iota
	CredentialBcrypt
	CredentialPBKDF2 // werkzeug generate_password_hash
	CredentialScrypt // werkzeug generate_password_hash
)

const (
	werkzeugDefaultIterations = 600000
	saltChars                 = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	saltLength                = 16
)

var errMalformedHash = errors.New("malformed password hash")

// DetectCredential 仅当字符串是结构完整的 bcrypt 哈希时才识别为 bcrypt，
// 以 "$2a$" 等开头的旧明文密码仍按明文处理
func DetectCredential(stored string) CredentialKind {
	switch {
	case isBcryptHash(stored):
		return CredentialBcrypt
	case strings.HasPrefix(stored, "pbkdf2:"):
		return CredentialPBKDF2
	case strings.HasPrefix(stored, "scrypt:"):
		return CredentialScrypt
	default:
		return CredentialPlaintext
	}
}

func isBcryptHash(stored string) bool {
	if !strings.HasPrefix(stored, "$2a$") && !strings.HasPrefix(stored, "$2b$") && !strings.HasPrefix(stored, "$2y$") {
		return false
	}
	_, err := bcrypt.Cost([]byte(stored))
	return err == nil
}

// HashPassword 默认使用 bcrypt；超过 72 字节的密码改用 werkzeug 兼容的 pbkdf2:sha256
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return hashPBKDF2(password, werkzeugDefaultIterations)
	}
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func hashPBKDF2(password string, iterations int) (string, error) {
	salt, err := genSalt(saltLength)
	if err != nil {
		return "", err
	}
	key := pbkdf2.Key([]byte(password), []byte(salt), iterations, sha256.Size, sha256.New)
	return fmt.Sprintf("pbkdf2:sha256:%d$%s$%s", iterations, salt, hex.EncodeToString(key)), nil
}

func genSalt(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = saltChars[int(b)%len(saltChars)]
	}
	return string(buf), nil
}

// CheckPassword 校验明文密码与存储凭据是否匹配。
// 格式错误的哈希返回 false 和错误；明文凭据按常量时间比较。
func CheckPassword(stored, password string) (bool, error) {
	switch DetectCredential(stored) {
	case CredentialBcrypt:
		err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(password))
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		return err == nil, err
	case CredentialPBKDF2, CredentialScrypt:
		return checkWerkzeug(stored, password)
	default:
		return subtle.ConstantTimeCompare([]byte(stored), []byte(password)) == 1, nil
	}
}

// checkWerkzeug 支持 "pbkdf2:sha256:600000$salt$hex" 与 "scrypt:32768:8:1$salt$hex"
func checkWerkzeug(stored, password string) (bool, error) {
	parts := strings.SplitN(stored, "$", 3)
	if len(parts) != 3 {
		return false, errMalformedHash
	}
	method, salt, want := parts[0], parts[1], parts[2]

	var got []byte
	args := strings.Split(method, ":")
	switch args[0] {
	case "pbkdf2":
		if len(args) < 2 {
			return false, errMalformedHash
		}
		h, err := hashByName(args[1])
		if err != nil {
			return false, err
		}
		iterations := werkzeugDefaultIterations
		if len(args) > 2 {
			if iterations, err = strconv.Atoi(args[2]); err != nil || iterations <= 0 {
				return false, errMalformedHash
			}
		}
		got = pbkdf2.Key([]byte(password), []byte(salt), iterations, h().Size(), h)
	case "scrypt":
		n, r, p := 32768, 8, 1
		if len(args) == 4 {
			var err error
			if n, err = strconv.Atoi(args[1]); err != nil {
				return false, errMalformedHash
			}
			if r, err = strconv.Atoi(args[2]); err != nil {
				return false, errMalformedHash
			}
			if p, err = strconv.Atoi(args[3]); err != nil {
				return false, errMalformedHash
			}
		} else if len(args) != 1 {
			return false, errMalformedHash
		}
		key, err := scrypt.Key([]byte(password), []byte(salt), n, r, p, 64)
		if err != nil {
			return false, fmt.Errorf("%w: %v", errMalformedHash, err)
		}
		got = key
	default:
		return false, errMalformedHash
	}

	return subtle.ConstantTimeCompare([]byte(hex.EncodeToString(got)), []byte(want)) == 1, nil
}

func hashByName(name string) (func() hash.Hash, error) {
	switch name {
	case "sha1":
		return sha1.New, nil
	case "sha256":
		return sha256.New, nil
	case "sha512":
		return sha512.New, nil
	default:
		return nil, fmt.Errorf("%w: unsupported hash %q", errMalformedHash, name)
	}
}
