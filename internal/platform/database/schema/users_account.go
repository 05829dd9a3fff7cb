// Copyright (c) 2026 Moviebunkers. All rights reserved.
// Author: dev@moviebunkers.app

package schema

// UserAccountTable represents the 'users.account' table
type UserAccountTable struct {
	Table     string
	ID        string
	UserName  string
	Email     string
	Password  string
	Role      string
	Status    string
	CreatedAt string
	UpdatedAt string
}

// UserAccount is the schema definition for users.account
var UserAccount = UserAccountTable{
	Table:     "users.account",
	ID:        "id",
	UserName:  "username",
	Email:     "email",
	Password:  "passwordhash",
	Role:      "role",
	Status:    "status",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}

// Columns returns all standard column names
func (t UserAccountTable) Columns() []string {
	return []string{
		t.ID, t.UserName, t.Email, t.Password, t.Role, t.Status,
		t.CreatedAt, t.UpdatedAt,
	}
}
