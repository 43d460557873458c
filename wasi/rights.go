package wasi

// Rights is a bitfield of capabilities attached to a file descriptor. The
// full vocabulary is part of the declared ABI surface; this host only ever
// consults RightsFdWrite.
type Rights uint64

const (
	// The right to invoke `fd_datasync`.
	RightsFdDatasync Rights = 1 << 0
	// The right to invoke `fd_read` and `sock_recv`.
	RightsFdRead Rights = 1 << 1
	// The right to invoke `fd_seek`. This flag implies `rights::fd_tell`.
	RightsFdSeek Rights = 1 << 2
	// The right to invoke `fd_fdstat_set_flags`.
	RightsFdFdstatSetFlags Rights = 1 << 3
	// The right to invoke `fd_sync`.
	RightsFdSync Rights = 1 << 4
	// The right to invoke `fd_seek` in such a way that the file offset
	// remains unaltered, or to invoke `fd_tell`.
	RightsFdTell Rights = 1 << 5
	// The right to invoke `fd_write` and `sock_send`.
	RightsFdWrite Rights = 1 << 6
	// The right to invoke `fd_advise`.
	RightsFdAdvise Rights = 1 << 7
	// The right to invoke `fd_allocate`.
	RightsFdAllocate Rights = 1 << 8
	// The right to invoke `path_create_directory`.
	RightsPathCreateDirectory Rights = 1 << 9
	// If `path_open` is set, the right to invoke `path_open` with `oflags::creat`.
	RightsPathCreateFile Rights = 1 << 10
	// The right to invoke `path_link` with the file descriptor as the
	// source directory.
	RightsPathLinkSource Rights = 1 << 11
	// The right to invoke `path_link` with the file descriptor as the
	// target directory.
	RightsPathLinkTarget Rights = 1 << 12
	// The right to invoke `path_open`.
	RightsPathOpen Rights = 1 << 13
	// The right to invoke `fd_readdir`.
	RightsFdReaddir Rights = 1 << 14
	// The right to invoke `path_readlink`.
	RightsPathReadlink Rights = 1 << 15
	// The right to invoke `path_rename` with the file descriptor as the source directory.
	RightsPathRenameSource Rights = 1 << 16
	// The right to invoke `path_rename` with the file descriptor as the target directory.
	RightsPathRenameTarget Rights = 1 << 17
	// The right to invoke `path_filestat_get`.
	RightsPathFilestatGet Rights = 1 << 18
	// The right to change a file's size.
	RightsPathFilestatSetSize Rights = 1 << 19
	// The right to invoke `path_filestat_set_times`.
	RightsPathFilestatSetTimes Rights = 1 << 20
	// The right to invoke `fd_filestat_get`.
	RightsFdFilestatGet Rights = 1 << 21
	// The right to invoke `fd_filestat_set_size`.
	RightsFdFilestatSetSize Rights = 1 << 22
	// The right to invoke `fd_filestat_set_times`.
	RightsFdFilestatSetTimes Rights = 1 << 23
	// The right to invoke `path_symlink`.
	RightsPathSymlink Rights = 1 << 24
	// The right to invoke `path_remove_directory`.
	RightsPathRemoveDirectory Rights = 1 << 25
	// The right to invoke `path_unlink_file`.
	RightsPathUnlinkFile Rights = 1 << 26
	// The right to invoke `poll_oneoff` for read and write subscriptions.
	RightsPollFdReadwrite Rights = 1 << 27
	// The right to invoke `sock_shutdown`.
	RightsSockShutdown Rights = 1 << 28

	FileRights = RightsFdAdvise | RightsFdAllocate | RightsFdDatasync |
		RightsFdFdstatSetFlags | RightsFdFilestatGet | RightsFdFilestatSetSize |
		RightsFdFilestatSetTimes | RightsFdRead | RightsFdSeek | RightsFdSync |
		RightsFdTell | RightsFdWrite | RightsPollFdReadwrite | RightsSockShutdown

	DirectoryRights = RightsFdReaddir | RightsPathCreateDirectory |
		RightsPathCreateFile | RightsPathFilestatGet | RightsPathFilestatSetSize |
		RightsPathFilestatSetTimes | RightsPathLinkSource | RightsPathLinkTarget |
		RightsPathOpen | RightsPathReadlink | RightsPathRemoveDirectory |
		RightsPathRenameSource | RightsPathRenameTarget | RightsPathSymlink |
		RightsPathUnlinkFile

	AllRights = FileRights | DirectoryRights
)

// Rights returns the capabilities attached to one of the standard handles.
// Descriptors outside the standard set carry no rights here.
func (fd FD) Rights() Rights {
	switch fd {
	case FdStdin:
		return FileRights &^ RightsFdWrite
	case FdStdout, FdStderr:
		return FileRights
	default:
		return 0
	}
}
