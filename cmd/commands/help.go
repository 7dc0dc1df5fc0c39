package commands

import "fmt"

const help = `guestlens: wedding photo and video sharing.

usage:
  guestlens run <config.yml>                       start the web server
  guestlens download <config.yml> [out-dir] [-y]   copy every original upload to out-dir
  guestlens help                                   show this message
  guestlens version                                print the version

storage is configured through S3_ENDPOINT, AWS_ACCESS_KEY_ID,
AWS_SECRET_ACCESS_KEY, S3_BUCKET_NAME and optionally AWS_REGION.
set BROKER_URI to publish upload events to redis.
`

func HandleHelp(_ []string) {
	fmt.Print(help) //nolint
}
