// Package host is the process-facing surface around tokenizing and binding:
// it strips the program name, short-circuits help requests, surfaces every
// binding failure as an ExitError with a non-zero code, and delivers the
// bound arguments to the hosted handler. It also renders usage text from a
// parameter spec so commands get a help screen without writing one.
package host
