/*
Package mapindex provides a reference backend for the btindex Storage contract,
built on the ordered map of github.com/google/btree.

It is algorithmically shallow on purpose: all ordering work is delegated to a
well-tested general purpose container. Its use is as a baseline for
differential testing of other backends.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package mapindex
