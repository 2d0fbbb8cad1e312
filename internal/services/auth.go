// auth.go
//
// Back-office data service for the Quantalyze marketing site
// Copyright (c) 2026 Quantalyze Digital <admin@quantalyze.co.in>
//
// This file is part of quantalyze-backoffice.
// quantalyze-backoffice is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// quantalyze-backoffice is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with quantalyze-backoffice.
// If not, see <https://www.gnu.org/licenses/>.

package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/quantalyze/backoffice/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ErrBadCredentials covers both unknown usernames and wrong passwords, so
// login failures never reveal which half was wrong.
var ErrBadCredentials = errors.New("invalid username or password")

// ErrWeakPassword rejects new passwords that fall below the length floor.
var ErrWeakPassword = errors.New("new password must be at least 8 characters")

// Authenticate checks an admin login and stamps last_login on success.
func Authenticate(db *gorm.DB, username, password string) (*models.AdminUser, error) {
	var user models.AdminUser
	err := db.Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrBadCredentials
	}
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, ErrBadCredentials
	}

	now := time.Now()
	user.LastLogin = &now
	if err := db.Model(&user).Update("last_login", now).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetAdminUser loads one admin account by id.
func GetAdminUser(db *gorm.DB, id uint64) (*models.AdminUser, error) {
	var user models.AdminUser
	err := db.Where("id = ?", id).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ChangePassword swaps an admin's password after verifying the current one.
func ChangePassword(db *gorm.DB, userID uint64, current, next string) error {
	if len(next) < 8 {
		return ErrWeakPassword
	}

	user, err := GetAdminUser(db, userID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(current)) != nil {
		return ErrBadCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return db.Model(user).Update("password", string(hash)).Error
}

// CreateResetToken issues a password reset token for the account behind an
// email address. The caller decides how to deliver it. An unknown email
// returns an empty token and no error, so the endpoint cannot be used to
// probe for accounts.
func CreateResetToken(db *gorm.DB, email string) (string, error) {
	var user models.AdminUser
	err := db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	token := uuid.New().String()
	if err := db.Model(&user).Update("reset_token", token).Error; err != nil {
		return "", err
	}
	return token, nil
}
