// Package lib groups supporting packages that sit outside the request
// layers: the asynq notification worker in job, the Resend mail client in
// email and small helpers in utils.
package lib
