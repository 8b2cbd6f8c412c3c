// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	categoryColumns = `
		local_id,
		server_id,
		user_id,
		name,
		kind,
		sync_status,
		needs_sync,
		last_sync_at,
		created_at,
		updated_at`

	getCategoriesNeedingSync = `
		SELECT ` + categoryColumns + `
		FROM categories
		WHERE user_id = ? AND needs_sync = 1
		ORDER BY local_id;`

	getAllCategories = `
		SELECT ` + categoryColumns + `
		FROM categories
		WHERE user_id = ?
		ORDER BY local_id;`

	getCategoryByServerID = `
		SELECT ` + categoryColumns + `
		FROM categories
		WHERE user_id = ? AND server_id = ?;`

	getCategoryByLocalID = `
		SELECT ` + categoryColumns + `
		FROM categories
		WHERE user_id = ? AND local_id = ?;`

	getMinCategoryLocalID = `
		SELECT COALESCE(MIN(local_id), 0)
		FROM categories;`

	deleteCategoryByID = `
		DELETE FROM categories
		WHERE local_id = ?;`

	expenseColumns = `
		local_id,
		server_id,
		user_id,
		category_id,
		amount,
		note,
		spent_at,
		sync_status,
		needs_sync,
		last_sync_at,
		created_at,
		updated_at`

	getExpensesNeedingSync = `
		SELECT ` + expenseColumns + `
		FROM expenses
		WHERE user_id = ? AND needs_sync = 1
		ORDER BY local_id;`

	getAllExpenses = `
		SELECT ` + expenseColumns + `
		FROM expenses
		WHERE user_id = ?
		ORDER BY local_id;`

	getExpenseByServerID = `
		SELECT ` + expenseColumns + `
		FROM expenses
		WHERE user_id = ? AND server_id = ?;`

	getExpenseByLocalID = `
		SELECT ` + expenseColumns + `
		FROM expenses
		WHERE user_id = ? AND local_id = ?;`

	deleteExpenseByID = `
		DELETE FROM expenses
		WHERE local_id = ?;`
)
