/*
Copyright © 2026 HostK8s Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeExternalCall,
//	    "failed to store secret in vault",
//	    cause,
//	    map[string]interface{}{
//	        "path":  vaultPath,
//	        "stack": stack,
//	    },
//	)
package errors
